package shunt

import "go.uber.org/zap"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type traceopt struct {
	log *zap.Logger
}

// parsectx holds general data for parsing.
type parsectx struct {
	// log receives a debug entry for every reduction.
	log *zap.Logger
}

func newparsectx(opts []ParseOption) *parsectx {
	p := parsectx{log: zap.NewNop()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return &p
}

// Trace logs each reduction the parser performs to log at debug level. A nil
// logger disables tracing.
func Trace(log *zap.Logger) ParseOption {
	return &traceopt{log: log}
}

func (o *traceopt) parseOption(p parsectx) parsectx {
	p.log = o.log
	if p.log == nil {
		p.log = zap.NewNop()
	}
	return p
}
