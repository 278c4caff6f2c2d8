package envelope

import "time"

// Envelope is the single response shape clients can program against:
// every endpoint, success or failure, returns this structure.
type Envelope struct {
	IsSuccess bool      `json:"isSuccess"`
	Data      any       `json:"data"`
	Errors    []string  `json:"errors"`
	Timestamp time.Time `json:"timestamp"`
}

func Success(data any) *Envelope {
	return &Envelope{
		IsSuccess: true,
		Data:      data,
		Errors:    []string{},
		Timestamp: time.Now().UTC(),
	}
}

func Failure(errors ...string) *Envelope {
	return &Envelope{
		IsSuccess: false,
		Errors:    errors,
		Timestamp: time.Now().UTC(),
	}
}
