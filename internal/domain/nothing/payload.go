package nothing

// Result is the only value the service ever reports.
const Result = "nothing"

// Payload is the response body for every request.
type Payload struct {
	Result string `json:"result"`
}

func NewPayload() Payload {
	return Payload{Result: Result}
}
