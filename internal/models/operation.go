package models

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Kind определяет вид операции согласно её разобранному определению
type Kind string

const (
	KindQuery        Kind = "query"
	KindMutation     Kind = "mutation"
	KindSubscription Kind = "subscription"
)

// Definition представляет разобранное определение операции:
// вид (query/mutation/subscription), имя и исходный текст документа.
type Definition struct {
	Kind     Kind   `json:"kind"`           // Kind вид операции
	Name     string `json:"name,omitempty"` // Name имя операции (может быть пустым)
	Document string `json:"document"`       // Document исходный текст документа
}

// Operation представляет неизменяемую операцию: разобранное определение,
// переменные и опциональный предварительный (optimistic) результат.
// Идентичность операции структурная: две операции равны тогда и только
// тогда, когда равны их определения и переменные. Предварительный результат
// в идентичность НЕ входит.
type Operation struct {
	Definition         Definition      `json:"definition"`
	Variables          json.RawMessage `json:"variables,omitempty"`
	OptimisticResponse json.RawMessage `json:"optimistic_response,omitempty"`
}

// NewOperation создает операцию, приводя переменные к канонической форме.
// variables может быть nil, map, структурой или json.RawMessage.
func NewOperation(def Definition, variables any, optimistic json.RawMessage) (*Operation, error) {
	op := &Operation{
		Definition:         def,
		OptimisticResponse: optimistic,
	}

	if variables != nil {
		raw, err := json.Marshal(variables)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal variables: %w", err)
		}
		// Каноническая форма нужна, чтобы идентичность пережила round-trip сериализации
		canonical, err := canonicalJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to canonicalize variables: %w", err)
		}
		op.Variables = canonical
	}

	return op, nil
}

// IsMutation сообщает, является ли операция write-операцией
func (o *Operation) IsMutation() bool {
	return o.Definition.Kind == KindMutation
}

// Equal сравнивает две операции по структурной идентичности:
// определение + канонизированные переменные. Предварительный результат
// не учитывается.
func (o *Operation) Equal(other *Operation) bool {
	if other == nil {
		return false
	}
	if o.Definition != other.Definition {
		return false
	}

	a, err := canonicalJSON(o.Variables)
	if err != nil {
		return false
	}
	b, err := canonicalJSON(other.Variables)
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// Fingerprint возвращает SHA-256 канонической формы (определение + переменные)
// в hex. Используется как нормализованный ключ идентичности при согласовании
// ответов и как тег для optimistic-записи в кэш.
func (o *Operation) Fingerprint() (string, error) {
	vars, err := canonicalJSON(o.Variables)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize variables: %w", err)
	}

	identity, err := json.Marshal(struct {
		Definition Definition      `json:"definition"`
		Variables  json.RawMessage `json:"variables,omitempty"`
	}{o.Definition, vars})
	if err != nil {
		return "", fmt.Errorf("failed to marshal identity: %w", err)
	}

	sum := sha256.Sum256(identity)
	return hex.EncodeToString(sum[:]), nil
}

// EncodeOperation сериализует операцию для хранения в очереди.
// Сериализация обязана round-trip'иться точно: согласование ответов
// опирается на структурное равенство после десериализации.
func EncodeOperation(op *Operation) ([]byte, error) {
	data, err := json.Marshal(op)
	if err != nil {
		return nil, fmt.Errorf("failed to encode operation: %w", err)
	}
	return data, nil
}

// DecodeOperation восстанавливает операцию из сериализованной формы
func DecodeOperation(data []byte) (*Operation, error) {
	op := &Operation{}
	if err := json.Unmarshal(data, op); err != nil {
		return nil, fmt.Errorf("failed to decode operation: %w", err)
	}
	if op.Definition.Kind == "" || op.Definition.Document == "" {
		return nil, fmt.Errorf("decoded operation has empty definition")
	}
	return op, nil
}

// canonicalJSON приводит JSON к канонической форме: encoding/json
// сериализует ключи map в отсортированном порядке, поэтому
// unmarshal -> marshal дает детерминированные байты.
func canonicalJSON(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
