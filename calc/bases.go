package calc

// BaseCounts counts nucleotides. Ambiguity codes other than S are
// ignored by GCFraction.
type BaseCounts struct {
	GC, AT, Other uint64
}

func NewBaseCounts() *BaseCounts {
	return &BaseCounts{}
}

func (c *BaseCounts) Increment(seq string) {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'S', 'g', 'c', 's':
			c.GC++
		case 'A', 'T', 'U', 'W', 'a', 't', 'u', 'w':
			c.AT++
		default:
			c.Other++
		}
	}
}

func (c *BaseCounts) Append(c1 *BaseCounts) {
	c.GC += c1.GC
	c.AT += c1.AT
	c.Other += c1.Other
}

// GCFraction returns GC / (GC + AT), or 0 when nothing was counted.
func (c *BaseCounts) GCFraction() float64 {
	n := c.GC + c.AT
	if n == 0 {
		return 0
	}
	return float64(c.GC) / float64(n)
}
