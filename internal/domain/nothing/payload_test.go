package nothing

import (
	"encoding/json"
	"testing"
)

func TestPayloadJSON(t *testing.T) {
	b, err := json.Marshal(NewPayload())
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	if got, want := string(b), `{"result":"nothing"}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestNewPayloadIsFresh(t *testing.T) {
	a := NewPayload()
	a.Result = "something"

	if b := NewPayload(); b.Result != Result {
		t.Fatalf("expected fresh payload, got %q", b.Result)
	}
}
