package dice

import "go.uber.org/zap"

// Roller evaluates expressions against a Source and logs every roll at
// debug level.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller returns a Roller over src.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Source returns the Source rolls are drawn from.
func (r *Roller) Source() Source { return r.src }

// RollExpr parses text and rolls it.
func (r *Roller) RollExpr(text string) (Result, error) {
	e, err := Parse(text)
	if err != nil {
		return Result{}, err
	}
	res := e.Roll(r.src)
	r.logger.Debug("dice roll",
		zap.Stringer("roll", res),
		zap.Int("total", res.Total()),
	)
	return res, nil
}
