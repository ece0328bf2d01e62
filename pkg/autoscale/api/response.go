package api

// ResponseMetadata is embedded in every response and carries the request
// ID echoed by the service.
type ResponseMetadata struct {
	RequestID string `xml:"-"`
}

func (m *ResponseMetadata) SetRequestID(id string) {
	m.RequestID = id
}
