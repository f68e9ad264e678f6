// Package scraper fetches the street parking suspensions page and extracts
// suspension events from its data table.
//
// The table is located by its marker class. A page without the table is a
// normal outcome (no suspensions today) and yields an empty result; malformed
// rows are dropped individually without failing the batch.
package scraper
