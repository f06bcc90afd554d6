package fmqe

// VarID is a dense, nonnegative, opaque handle assigned by AddVar. Ids are
// never reused.
type VarID int32

// InvalidVarID never matches a real variable.
const InvalidVarID VarID = -1

// RowID is a dense, nonnegative, opaque handle for a row slot. Row 0 is
// always the objective.
type RowID int32

// InvalidRowID never matches a real row.
const InvalidRowID RowID = -1

// ObjectiveRow is the fixed id of the distinguished objective row.
const ObjectiveRow RowID = 0
