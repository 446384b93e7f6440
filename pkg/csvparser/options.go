package csvparser

// Option configures a record parser
type Option func(*recordParser) error

// WithMaxRows stops parsing after n data rows. Zero means no limit.
func WithMaxRows(n int) Option {
	return func(p *recordParser) error {
		if n < 0 {
			return ErrNegativeMaxRows
		}
		p.maxRows = n
		return nil
	}
}
