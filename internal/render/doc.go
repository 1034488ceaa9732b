// Package render turns a values template and a record's [Values] into a
// Helm values document.
//
// Templates use Go text/template syntax with the sprig text functions, the
// same function set Helm chart templates see. Rendering fails on any key
// that is not part of the record, so a typo in a template cannot silently
// produce an empty value.
package render
