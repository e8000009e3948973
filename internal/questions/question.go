package questions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID identifies a question within a bank. The JSON form may be a string or a
// number. Numbers are stored in their shortest decimal form, so 7, 7.0 and
// 7e0 are one ID, and 7 and "7" are the same ID as well.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	n, ok := v.(json.Number)
	if !ok {
		return fmt.Errorf("question id must be a string or number, got %s", string(data))
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return fmt.Errorf("question id %s: %w", n, err)
	}
	*id = ID(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// Option is one answer choice of a question.
type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID          ID       `json:"id"`
	Question    string   `json:"question"`
	Options     []Option `json:"options"`
	Explanation string   `json:"explanation,omitempty"`
	Quiz        string   `json:"quiz,omitempty"`
}

// UnmarshalJSON decodes a question. An explanation that is not a string is
// dropped rather than failing the bank.
func (q *Question) UnmarshalJSON(data []byte) error {
	type plain Question
	var raw struct {
		plain
		Explanation json.RawMessage `json:"explanation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*q = Question(raw.plain)

	var explanation string
	if json.Unmarshal(raw.Explanation, &explanation) != nil {
		explanation = ""
	}
	q.Explanation = explanation
	return nil
}

// CorrectIndexes returns the ascending indexes of options marked correct.
func (q Question) CorrectIndexes() []int {
	var idx []int
	for i, o := range q.Options {
		if o.Correct {
			idx = append(idx, i)
		}
	}
	return idx
}

// CorrectTexts returns the texts of the correct options in option order.
func (q Question) CorrectTexts() []string {
	var texts []string
	for _, o := range q.Options {
		if o.Correct {
			texts = append(texts, o.Text)
		}
	}
	return texts
}

// IsMultiCorrect reports whether more than one option is marked correct.
func (q Question) IsMultiCorrect() bool {
	return len(q.CorrectIndexes()) > 1
}
