package models

import "encoding/json"

// ResponseError представляет одну прикладную (GraphQL) ошибку из ответа
type ResponseError struct {
	Message string `json:"message"`
}

// Response представляет один ответ, идущий по конвейеру в обратном
// направлении. Operation — исходная операция, породившая ответ.
// Err заполняется только при транспортной ошибке и не сериализуется:
// прикладные ошибки сервера попадают в Errors.
type Response struct {
	Operation *Operation      `json:"operation,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Errors    []ResponseError `json:"errors,omitempty"`
	Err       error           `json:"-"`
}

// TransportFailed сообщает, что ответ несет транспортную ошибку
// (сеть, таймаут, недоступность сервера), а не прикладную.
func (r *Response) TransportFailed() bool {
	return r.Err != nil
}
