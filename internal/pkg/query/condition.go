package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition. Implementations generate SQL
// fragments and parameter maps using Spanner's named parameter format.
type Condition interface {
	// SQL returns the fragment and parameter map for this condition.
	// paramIndex seeds unique parameter names (@p0, @p1, ...).
	SQL(paramIndex int) (string, map[string]interface{})
}

type binaryCondition struct {
	field    string
	operator string
	value    interface{}
}

func (c *binaryCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s %s @%s", c.field, c.operator, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// Eq creates a "field = value" condition.
func Eq(field string, value interface{}) Condition {
	return &binaryCondition{field: field, operator: "=", value: value}
}

// Lte creates a "field <= value" condition.
func Lte(field string, value interface{}) Condition {
	return &binaryCondition{field: field, operator: "<=", value: value}
}

// In creates a "field IN UNNEST(@pN)" condition for matching any of values.
func In(field string, values interface{}) Condition {
	return &inCondition{field: field, values: values}
}

type inCondition struct {
	field  string
	values interface{}
}

func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s IN UNNEST(@%s)", c.field, paramName)
	return sql, map[string]interface{}{paramName: c.values}
}

// IsNull creates a "field IS NULL" condition.
func IsNull(field string) Condition {
	return &nullCondition{field: field, negate: false}
}

// IsNotNull creates a "field IS NOT NULL" condition.
func IsNotNull(field string) Condition {
	return &nullCondition{field: field, negate: true}
}

type nullCondition struct {
	field  string
	negate bool
}

func (c *nullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	var sb strings.Builder
	sb.WriteString(c.field)
	if c.negate {
		sb.WriteString(" IS NOT NULL")
	} else {
		sb.WriteString(" IS NULL")
	}
	return sb.String(), map[string]interface{}{}
}
