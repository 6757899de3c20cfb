// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package wmi

import (
	"fmt"
	"strings"
)

// QuoteWQL escapes a literal for inclusion inside single quotes in a WQL
// query. WQL uses backslash escapes for quotes and backslashes.
func QuoteWQL(literal string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `"`, `\"`)
	return replacer.Replace(literal)
}

// ClassNameQuery builds the meta_class query used to enumerate the class
// names of a namespace. An empty filter matches every class; otherwise the
// filter is applied with LIKE and may carry '%' wildcards.
func ClassNameQuery(filter string) string {
	query := "SELECT * FROM meta_class"
	if filter != "" {
		query += fmt.Sprintf(" WHERE __CLASS LIKE '%s'", QuoteWQL(filter))
	}
	return query
}

// InstanceQuery builds a SELECT * query for a class, optionally constrained
// to instances whose property equals the given literal value.
func InstanceQuery(className, whereProperty, whereValue string) string {
	query := fmt.Sprintf("SELECT * FROM %s", className)
	if whereProperty != "" {
		query += fmt.Sprintf(" WHERE %s = '%s'", whereProperty, QuoteWQL(whereValue))
	}
	return query
}
