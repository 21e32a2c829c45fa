package temporal

import "time"

// Period is a time interval with independent bound inclusivity.
type Period struct {
	Start    time.Time
	End      time.Time
	LowerInc bool
	UpperInc bool
}

func NewPeriod(start, end time.Time, lowerInc, upperInc bool) Period {
	if start.Equal(end) {
		lowerInc = true
		upperInc = true
	}

	return Period{
		Start:    start,
		End:      end,
		LowerInc: lowerInc,
		UpperInc: upperInc,
	}
}

func (p Period) Contains(t time.Time) bool {
	if t.Before(p.Start) || t.After(p.End) {
		return false
	}

	if t.Equal(p.Start) && !p.LowerInc {
		return false
	}

	if t.Equal(p.End) && !p.UpperInc {
		return false
	}

	return true
}

func (p Period) Intersect(o Period) (r Period, ok bool) {
	r.Start = p.Start
	r.LowerInc = p.LowerInc

	if o.Start.After(r.Start) {
		r.Start = o.Start
		r.LowerInc = o.LowerInc
	} else if o.Start.Equal(r.Start) {
		r.LowerInc = r.LowerInc && o.LowerInc
	}

	r.End = p.End
	r.UpperInc = p.UpperInc

	if o.End.Before(r.End) {
		r.End = o.End
		r.UpperInc = o.UpperInc
	} else if o.End.Equal(r.End) {
		r.UpperInc = r.UpperInc && o.UpperInc
	}

	if r.Start.After(r.End) {
		return Period{}, false
	}

	if r.Start.Equal(r.End) && !(r.LowerInc && r.UpperInc) {
		return Period{}, false
	}

	return r, true
}

func (p Period) Overlaps(o Period) bool {
	_, ok := p.Intersect(o)

	return ok
}
