package api

import "encoding/json"

// Request представляет GraphQL запрос в формате GraphQL-over-HTTP
type Request struct {
	Query         string          `json:"query"`                   // текст документа операции
	OperationName string          `json:"operationName,omitempty"` // имя операции (если в документе их несколько)
	Variables     json.RawMessage `json:"variables,omitempty"`     // переменные операции
}

// Error представляет одну ошибку из секции errors ответа сервера
type Error struct {
	Message string `json:"message"`
}

// Response представляет ответ сервера на GraphQL запрос
type Response struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []Error         `json:"errors,omitempty"`
}
