package supabase

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Method is the kind of PostgREST request a Query describes.
type Method string

const (
	MethodSelect Method = "select"
	MethodInsert Method = "insert"
	MethodUpdate Method = "update"
	MethodDelete Method = "delete"
)

// Constraint is one horizontal filter, rendered as column=operator.operand.
type Constraint struct {
	Column   string
	Operator string
	Operand  any
}

// Query is an immutable description of one PostgREST request. Every builder
// method returns a modified copy; the receiver is never changed.
type Query struct {
	table       string
	method      Method
	columns     string
	body        any
	constraints []Constraint
}

// From starts a select of all columns from table.
func From(table string) Query {
	return Query{table: table, method: MethodSelect, columns: "*"}
}

// Select sets the returned columns. No columns means all of them.
func (q Query) Select(columns ...string) Query {
	q.columns = "*"
	if len(columns) > 0 {
		q.columns = strings.Join(columns, ",")
	}
	return q
}

func (q Query) Insert(body any) Query {
	q.method = MethodInsert
	q.body = body
	return q
}

func (q Query) Update(body any) Query {
	q.method = MethodUpdate
	q.body = body
	return q
}

func (q Query) Delete() Query {
	q.method = MethodDelete
	q.body = nil
	return q
}

// Eq adds an equality constraint.
func (q Query) Eq(column string, value any) Query {
	return q.Filter(column, "eq", value)
}

// Filter adds a constraint with a PostgREST operator. The operator is passed
// through untouched.
func (q Query) Filter(column, operator string, value any) Query {
	cs := make([]Constraint, len(q.constraints), len(q.constraints)+1)
	copy(cs, q.constraints)
	q.constraints = append(cs, Constraint{Column: column, Operator: operator, Operand: value})
	return q
}

func (q Query) Table() string   { return q.table }
func (q Query) Method() Method  { return q.method }
func (q Query) Columns() string { return q.columns }
func (q Query) Body() any       { return q.body }

// Constraints returns a copy of the constraints in the order they were added.
func (q Query) Constraints() []Constraint {
	out := make([]Constraint, len(q.constraints))
	copy(out, q.constraints)
	return out
}

// Values renders the query string: the select list plus one entry per
// constraint.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("select", q.columns)
	for _, c := range q.constraints {
		v.Add(c.Column, c.Operator+"."+EncodeOperand(c.Operand))
	}
	return v
}

// EncodeOperand renders a filter operand as PostgREST text.
func EncodeOperand(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x)
	case json.Number:
		return x.String()
	case []string:
		return "(" + strings.Join(x, ",") + ")"
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = EncodeOperand(e)
		}
		return "(" + strings.Join(parts, ",") + ")"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
