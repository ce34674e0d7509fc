// Package csv holds the configuration model for tabular data: delimiters,
// quote styles, column descriptors and per-file properties. The parser
// itself is not implemented yet; consumers are expected to stream parsed
// rows into memory buffers once the record layout is settled.
package csv

import "errors"

// ErrNotImplemented is returned by operations whose implementation is
// still pending.
var ErrNotImplemented = errors.New("csv: not implemented")

// Delimiter identifies the field separator of a tabular file.
type Delimiter int

const (
	DelimiterUnknown Delimiter = iota
	DelimiterComma
	DelimiterTab
)

// Rune returns the separator character, or 0 for DelimiterUnknown.
func (d Delimiter) Rune() rune {
	switch d {
	case DelimiterComma:
		return ','
	case DelimiterTab:
		return '\t'
	default:
		return 0
	}
}

// QuoteStyle identifies how fields are quoted.
type QuoteStyle int

const (
	QuoteNone QuoteStyle = iota
	QuoteDouble
	QuoteSingle
)

// DataType identifies the declared type of a column.
type DataType int

const (
	TypeString DataType = iota
	TypeInteger
	TypeFloat
	TypeBoolean
	TypeDate
)

// Column describes a single column: its name and declared data type.
type Column struct {
	name     string
	dataType DataType
}

// NewColumn creates a column with the given name and data type.
func NewColumn(name string, dataType DataType) Column {
	return Column{name: name, dataType: dataType}
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// DataType returns the column's declared data type.
func (c Column) DataType() DataType { return c.dataType }

// Properties describes the shape of a tabular file: its columns, field
// delimiter and quote style.
type Properties struct {
	columns    []Column
	delimiter  Delimiter
	quoteStyle QuoteStyle
}

// AddColumn appends a column descriptor.
func (p *Properties) AddColumn(c Column) {
	p.columns = append(p.columns, c)
}

// Columns returns the column descriptors in declaration order.
func (p *Properties) Columns() []Column { return p.columns }

// SetDelimiter sets the field delimiter.
func (p *Properties) SetDelimiter(d Delimiter) { p.delimiter = d }

// Delimiter returns the field delimiter.
func (p *Properties) Delimiter() Delimiter { return p.delimiter }

// SetQuoteStyle sets the quote style.
func (p *Properties) SetQuoteStyle(q QuoteStyle) { p.quoteStyle = q }

// QuoteStyle returns the quote style.
func (p *Properties) QuoteStyle() QuoteStyle { return p.quoteStyle }

// CSV holds tabular data together with the properties it was parsed with.
type CSV struct {
	props   Properties
	records [][]string
}

// New creates an empty CSV with the given properties.
func New(props Properties) *CSV {
	return &CSV{props: props}
}

// Properties returns the parse properties.
func (c *CSV) Properties() Properties { return c.props }

// Parse parses raw tabular data into records. Not implemented: the record
// layout and its mapping onto memory buffers are still open.
func (c *CSV) Parse(data string) error {
	return ErrNotImplemented
}

// Records returns the parsed rows. It is empty until Parse is implemented.
func (c *CSV) Records() [][]string { return c.records }
