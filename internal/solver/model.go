// Package solver implements the boolean constraint-satisfaction/
// optimization model described by the schedule solver component: a single
// boolean decision variable per (production, timeslot) pair sharing a
// stage, plus the auxiliary variables needed to linearize the soft
// adjacency terms, solved by a CP-SAT-style Backend.
package solver

// BoolVar is a 0/1 decision variable. Variables are created in the order
// the caller wants them branched on by a Backend that does not reorder;
// conventionally primary decision variables (x[p,t]) are created before
// any derived/auxiliary variables (run starts, AND indicators) so a
// sequential search resolves the primaries first.
type BoolVar struct {
	index int
	Name  string
}

// Op is a linear constraint's comparison operator.
type Op int

const (
	OpLE Op = iota
	OpGE
	OpEQ
)

// LinearConstraint constrains a weighted sum of BoolVars against rhs.
type LinearConstraint struct {
	Terms map[*BoolVar]int
	Op    Op
	RHS   int
}

func (c LinearConstraint) maxIndex() int {
	max := -1
	for v := range c.Terms {
		if v.index > max {
			max = v.index
		}
	}
	return max
}

func (c LinearConstraint) satisfied(assign []int) bool {
	sum := 0
	for v, coeff := range c.Terms {
		sum += coeff * assign[v.index]
	}
	switch c.Op {
	case OpLE:
		return sum <= c.RHS
	case OpGE:
		return sum >= c.RHS
	case OpEQ:
		return sum == c.RHS
	default:
		return false
	}
}

// Model is a small boolean linear model: variables, fixed assignments
// (hard pins), linear constraints, and an objective to maximize.
type Model struct {
	Vars        []*BoolVar
	Fixed       map[int]int
	Constraints []LinearConstraint
	Objective   map[int]int
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{
		Fixed:     make(map[int]int),
		Objective: make(map[int]int),
	}
}

// NewBoolVar creates and registers a new decision variable.
func (m *Model) NewBoolVar(name string) *BoolVar {
	v := &BoolVar{index: len(m.Vars), Name: name}
	m.Vars = append(m.Vars, v)
	return v
}

// Fix forces v to the given 0/1 value.
func (m *Model) Fix(v *BoolVar, value int) {
	m.Fixed[v.index] = value
}

// AddLessOrEqual adds Σ(coeff*var) ≤ rhs.
func (m *Model) AddLessOrEqual(terms map[*BoolVar]int, rhs int) {
	m.Constraints = append(m.Constraints, LinearConstraint{Terms: terms, Op: OpLE, RHS: rhs})
}

// AddGreaterOrEqual adds Σ(coeff*var) ≥ rhs.
func (m *Model) AddGreaterOrEqual(terms map[*BoolVar]int, rhs int) {
	m.Constraints = append(m.Constraints, LinearConstraint{Terms: terms, Op: OpGE, RHS: rhs})
}

// AddEqual adds Σ(coeff*var) = rhs.
func (m *Model) AddEqual(terms map[*BoolVar]int, rhs int) {
	m.Constraints = append(m.Constraints, LinearConstraint{Terms: terms, Op: OpEQ, RHS: rhs})
}

// AddObjectiveTerm adds weight*v to the maximized objective.
func (m *Model) AddObjectiveTerm(v *BoolVar, weight int) {
	m.Objective[v.index] += weight
}

// AddBoolAnd introduces the standard linearization of z = A AND B:
// z ≤ A, z ≤ B, z ≥ A+B−1.
func (m *Model) AddBoolAnd(z, a, b *BoolVar) {
	m.AddLessOrEqual(map[*BoolVar]int{z: 1, a: -1}, 0)
	m.AddLessOrEqual(map[*BoolVar]int{z: 1, b: -1}, 0)
	m.AddGreaterOrEqual(map[*BoolVar]int{z: 1, a: -1, b: -1}, -1)
}

// AddImplication adds antecedent ⟹ consequent, i.e. consequent ≥ antecedent.
func (m *Model) AddImplication(antecedent, consequent *BoolVar) {
	m.AddGreaterOrEqual(map[*BoolVar]int{consequent: 1, antecedent: -1}, 0)
}
