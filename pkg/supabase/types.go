package supabase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query is a PostgREST filter/order/paging builder. The zero value selects
// every row of the table.
type Query struct {
	columns []string
	filters url.Values
	order   []string
	limit   int
	offset  int
}

// NewQuery starts a query selecting columns ("*" when none are given).
func NewQuery(columns ...string) *Query {
	return &Query{columns: columns, filters: url.Values{}}
}

func (q *Query) filter(column, op string, value any) *Query {
	if q.filters == nil {
		q.filters = url.Values{}
	}
	q.filters.Add(column, fmt.Sprintf("%s.%v", op, value))
	return q
}

func (q *Query) Eq(column string, value any) *Query  { return q.filter(column, "eq", value) }
func (q *Query) Neq(column string, value any) *Query { return q.filter(column, "neq", value) }
func (q *Query) Gte(column string, value any) *Query { return q.filter(column, "gte", value) }
func (q *Query) Lte(column string, value any) *Query { return q.filter(column, "lte", value) }
func (q *Query) Lt(column string, value any) *Query  { return q.filter(column, "lt", value) }
func (q *Query) Gt(column string, value any) *Query  { return q.filter(column, "gt", value) }

// In matches any of values.
func (q *Query) In(column string, values ...string) *Query {
	return q.filter(column, "in", "("+strings.Join(values, ",")+")")
}

// Order appends a sort key. Multiple calls sort by each key in turn.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "asc"
	if !ascending {
		dir = "desc"
	}
	q.order = append(q.order, column+"."+dir)
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

func (q *Query) Offset(n int) *Query {
	q.offset = n
	return q
}

// values encodes the query. Filters only are used for writes.
func (q *Query) values(read bool) url.Values {
	v := url.Values{}
	if q == nil {
		if read {
			v.Set("select", "*")
		}
		return v
	}
	for k, vals := range q.filters {
		for _, val := range vals {
			v.Add(k, val)
		}
	}
	if !read {
		return v
	}
	if len(q.columns) == 0 {
		v.Set("select", "*")
	} else {
		v.Set("select", strings.Join(q.columns, ","))
	}
	if len(q.order) > 0 {
		v.Set("order", strings.Join(q.order, ","))
	}
	if q.limit > 0 {
		v.Set("limit", strconv.Itoa(q.limit))
	}
	if q.offset > 0 {
		v.Set("offset", strconv.Itoa(q.offset))
	}
	return v
}

// APIError is the error body PostgREST returns on failure.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase API error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase API error %d: %s", e.StatusCode, e.Message)
}
