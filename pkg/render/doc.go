// Package render draws Tables and Records as box-drawn text.
//
// Tables are sized to their content: every column is as wide as the widest of
// its label, its width hint and its rendered cells, so borders line up in a
// fixed-width font. Records are drawn as a two-field box whose key and value
// fields default to fixed widths (15 and 10) and truncate longer text; with
// RecordOptions.Fit the fields grow to the widest key and value instead.
//
// A render is a pure function of its input. Output is built in memory and
// written to the sink in a single call.
//
//	╔════╦════════╗
//	║ ID ║ NOMBRE ║
//	╠════╬════════╣
//	║ 1  ║ Ana    ║
//	╠════╬════════╣
//	║ 2  ║ Beto   ║
//	╚════╩════════╝
package render
