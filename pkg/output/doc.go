// Package output prints tables and records in the format chosen by the user.
//
// The box format goes through pkg/render and is what the interactive menu
// uses. The json, yaml and xml formats exist for scripting; all of them keep
// the column order of the table or the key order of the record.
package output
