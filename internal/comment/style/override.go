package style

// Override is a partial CommentStyle. Nil fields leave the upstream value
// untouched. Setting Line to the empty string removes line comments;
// setting Block to the zero pair removes block comments.
type Override struct {
	Line    *string
	Block   *Block
	Nesting *bool
}

// IsZero reports whether the override sets no field.
func (o Override) IsZero() bool {
	return o.Line == nil && o.Block == nil && o.Nesting == nil
}

// Apply returns a copy of base with the explicitly set fields of o applied.
func (o Override) Apply(base CommentStyle) CommentStyle {
	out := base
	if o.Line != nil {
		out.Line = *o.Line
	}
	if o.Block != nil {
		out.Block = *o.Block
	}
	if o.Nesting != nil {
		out.Nesting = *o.Nesting
	}
	return out
}

// Merge returns an override whose set fields come from top where set and
// from o otherwise.
func (o Override) Merge(top Override) Override {
	out := o
	if top.Line != nil {
		out.Line = top.Line
	}
	if top.Block != nil {
		out.Block = top.Block
	}
	if top.Nesting != nil {
		out.Nesting = top.Nesting
	}
	return out
}

// Overrides maps a language key to its override.
type Overrides map[string]Override

// Lookup returns the override for a language key.
func (m Overrides) Lookup(lang string) (Override, bool) {
	if m == nil {
		return Override{}, false
	}
	o, ok := m[lang]
	return o, ok
}

// Clone returns a shallow copy of the table.
func (m Overrides) Clone() Overrides {
	out := make(Overrides, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// String returns a pointer to s, for building overrides.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building overrides.
func Bool(b bool) *bool { return &b }

// Pair returns a pointer to a block pair, for building overrides.
func Pair(start, end string) *Block { return &Block{Start: start, End: end} }
