package window

// pager walks through n figures, one dismissal at a time.
type pager struct {
	n, cur int
}

func (p *pager) dismiss() {
	if p.cur < p.n {
		p.cur++
	}
}

func (p *pager) done() bool { return p.cur >= p.n }
