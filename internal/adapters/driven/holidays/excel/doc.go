// Package excel reads and writes holiday lists in xlsx workbooks.
//
// A Source reads one column of a worksheet. Cells are read as raw values,
// so date-formatted cells arrive as day serials and text cells as strings;
// both are resolved the same way NETWORKDAYS resolves its arguments.
// Export writes a calendar back out with a date number format, and a
// Watcher reports when the workbook on disk changes.
package excel
