package fmqe

// Logger is the diagnostic sink the engine logs driver-level events to. It
// owns no tracing/formatting policy of its own (that is a caller concern);
// the engine only ever calls Printf, coarsely, once per pivot chosen in
// Maximize and once per representative chosen in Project.
type Logger interface {
	Printf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Printf(string, ...interface{}) {}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger attaches a diagnostic sink.
func WithLogger(logger Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithDebug overrides the package-level Debug flag for this engine instance
// only.
func WithDebug(debug bool) Option {
	return func(e *Engine) { e.debug = debug }
}

// Engine is the model-based Fourier-Motzkin tableau: a dense row store, a
// per-variable model and rowsOf index, and the objective pinned at row id 0.
//
// Engine is single-threaded and non-reentrant (SPEC_FULL.md section 5): all
// operations are synchronous, and callers needing parallelism must Clone.
type Engine struct {
	rows   []Row
	model  []*Rational
	rowsOf [][]RowID

	logger Logger
	debug  bool
}

// New constructs an Engine with row 0 reserved as a trivially-true objective
// (kind Le, no variables, constant 0).
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: noopLogger{},
		debug:  Debug,
	}
	e.reset()
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) reset() {
	e.rows = append(e.rows[:0], newRow(Le, rZero()))
	e.model = nil
	e.rowsOf = nil
}

// Reset restores the engine to its freshly-constructed state (row 0 only,
// no variables), without discarding the logger/debug configuration.
func (e *Engine) Reset() { e.reset() }

// Clone returns a deep, independent copy of the engine: its own row store,
// model, and rowsOf index. Callers that need to explore alternative
// projections or objectives from a common checkpoint (e.g. a
// branch-and-bound driver) should Clone rather than share an Engine across
// goroutines.
func (e *Engine) Clone() *Engine {
	c := &Engine{logger: e.logger, debug: e.debug}
	c.rows = make([]Row, len(e.rows))
	for i := range e.rows {
		c.rows[i] = e.rows[i].clone()
	}
	c.model = make([]*Rational, len(e.model))
	for i, v := range e.model {
		c.model[i] = new(Rational).Set(v)
	}
	c.rowsOf = make([][]RowID, len(e.rowsOf))
	for i, rs := range e.rowsOf {
		c.rowsOf[i] = append([]RowID(nil), rs...)
	}
	return c
}

// AddVar registers a new variable with the given initial model value and
// returns its fresh dense id. Ids are never reused.
func (e *Engine) AddVar(value *Rational) VarID {
	id := VarID(len(e.model))
	e.model = append(e.model, new(Rational).Set(value))
	e.rowsOf = append(e.rowsOf, nil)
	return id
}

// NumVars returns the number of variables registered so far.
func (e *Engine) NumVars() int { return len(e.model) }

// GetValue returns the current model value for v.
func (e *Engine) GetValue(v VarID) *Rational {
	e.assertf(int(v) >= 0 && int(v) < len(e.model), "GetValue: var %d out of range", v)
	return e.model[v]
}

func (e *Engine) varInRange(v VarID) bool {
	return int(v) >= 0 && int(v) < len(e.model)
}

func (e *Engine) buildRow(kind RelKind, coeffs []Monomial, constant *Rational) (Row, error) {
	seen := make(map[VarID]bool, len(coeffs))
	row := newRow(kind, constant)
	terms := make([]Monomial, 0, len(coeffs))
	for _, m := range coeffs {
		if !e.varInRange(m.ID) {
			return Row{}, ErrUnknownVariable
		}
		if seen[m.ID] {
			return Row{}, ErrDuplicateVariable
		}
		if rIsZero(m.Coeff) {
			return Row{}, ErrZeroCoefficient
		}
		seen[m.ID] = true
		terms = append(terms, Monomial{ID: m.ID, Coeff: new(Rational).Set(m.Coeff)})
	}
	sortMonomials(terms)
	row.vars = terms
	row.value = evaluate(&row, e.model)
	return row, nil
}

// AddConstraint appends a new live row built from coeffs/constant/rel and
// registers it in the rowsOf index. Precondition: the current model
// satisfies the new constraint (invariant 4); when it does not, this returns
// ErrConstraintUnsatisfied rather than corrupting state, whatever the debug
// setting.
func (e *Engine) AddConstraint(coeffs []Monomial, constant *Rational, rel RelKind) (RowID, error) {
	row, err := e.buildRow(rel, coeffs, constant)
	if err != nil {
		return InvalidRowID, err
	}
	switch rel {
	case Eq:
		if !rIsZero(row.value) {
			return InvalidRowID, ErrConstraintUnsatisfied
		}
	case Lt:
		if row.value.Sign() >= 0 {
			return InvalidRowID, ErrConstraintUnsatisfied
		}
	case Le:
		if row.value.Sign() > 0 {
			return InvalidRowID, ErrConstraintUnsatisfied
		}
	}

	id := RowID(len(e.rows))
	e.rows = append(e.rows, row)
	for _, m := range row.vars {
		e.rowsOf[m.ID] = append(e.rowsOf[m.ID], id)
	}
	return id, nil
}

// SetObjective overwrites row 0 with the supplied linear expression. The
// objective's type is always recorded as Le.
func (e *Engine) SetObjective(coeffs []Monomial, constant *Rational) error {
	row, err := e.buildRow(Le, coeffs, constant)
	if err != nil {
		return err
	}
	row.alive = true
	e.rows[ObjectiveRow] = row
	return nil
}

// GetLiveRows appends copies of every live row to out and returns the
// extended slice. Copies are used so callers never retain references into
// engine-owned storage across calls (SPEC_FULL.md section 5).
func (e *Engine) GetLiveRows(out []Row) []Row {
	for i := range e.rows {
		if i == int(ObjectiveRow) {
			continue
		}
		if e.rows[i].alive {
			out = append(out, e.rows[i].clone())
		}
	}
	return out
}

// Objective returns a copy of the current objective row.
func (e *Engine) Objective() Row {
	return e.rows[ObjectiveRow].clone()
}

func sortMonomials(ms []Monomial) {
	// Insertion sort: constraint arity is small in practice and this keeps
	// the dependency surface to the stdlib slice we already own.
	for i := 1; i < len(ms); i++ {
		for j := i; j > 0 && ms[j-1].ID > ms[j].ID; j-- {
			ms[j-1], ms[j] = ms[j], ms[j-1]
		}
	}
}
