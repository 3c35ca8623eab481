package truthtable

// Report keeps track of which rows of a truth table the formula holds for.
// Rows are identified by their index in the table.
type Report struct {
	Satisfying []int
	Falsifying []int
}

func (r *Report) RecordResult(row int, result bool) {
	if result {
		r.RecordSatisfying(row)
	} else {
		r.RecordFalsifying(row)
	}
}

// RecordSatisfying records that the formula is true for the row
func (r *Report) RecordSatisfying(row int) {
	r.Satisfying = append(r.Satisfying, row)
}

// RecordFalsifying records that the formula is false for the row
func (r *Report) RecordFalsifying(row int) {
	r.Falsifying = append(r.Falsifying, row)
}

func (r *Report) HasSatisfyingRows() bool {
	return len(r.Satisfying) > 0
}

func (r *Report) HasFalsifyingRows() bool {
	return len(r.Falsifying) > 0
}
