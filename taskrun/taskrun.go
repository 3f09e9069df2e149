// Package taskrun exposes attributes of the currently executing task run,
// resolved lazily on every access. When no task run can be discovered on the
// calling context, attributes resolve to neutral empty values instead of
// failing, so the package is safe to use from code that also runs outside
// the orchestrator.
//
// Every attribute can be overridden for testing through environment
// variables named OverridePrefix + "__" + the uppercased attribute name,
// e.g. EXECUTION_HUB__RUNTIME__TASK_RUN__NAME. Override values are coerced
// back to the attribute's declared kind so that overridden and real runs
// look the same to callers.
package taskrun

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/execution-hub/runtime/runctx"
)

// Attr names one runtime attribute of a task run.
type Attr string

// The registered attributes.
const (
	AttrID         Attr = "id"
	AttrName       Attr = "name"
	AttrParameters Attr = "parameters"
	AttrRunCount   Attr = "run_count"
	AttrStartTime  Attr = "start_time"
	AttrTags       Attr = "tags"
	AttrTaskName   Attr = "task_name"
)

// OverridePrefix is the environment prefix for attribute overrides.
const OverridePrefix = "EXECUTION_HUB__RUNTIME__TASK_RUN"

// OverrideKey returns the environment variable that overrides attr.
func OverrideKey(attr Attr) string {
	return OverridePrefix + "__" + strings.ToUpper(string(attr))
}

// Environ is the key-value surface overrides are read from. An unset key
// must be distinguishable from a key set to the empty string.
type Environ interface {
	Lookup(key string) (string, bool)
}

type osEnviron struct{}

func (osEnviron) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// field binds one attribute to its resolver and its declared override kind.
type field struct {
	kind    Kind
	resolve func(*runctx.RunContext) any
}

// Resolver resolves task run attributes against the ambient run context,
// applying environment overrides. It holds no state between calls; every
// access re-resolves.
type Resolver struct {
	fields map[Attr]field
	env    Environ
	logger zerolog.Logger
}

// NewResolver creates a resolver reading overrides from env. A nil env
// falls back to the process environment.
func NewResolver(env Environ, logger zerolog.Logger) *Resolver {
	if env == nil {
		env = osEnviron{}
	}
	return &Resolver{
		fields: map[Attr]field{
			AttrID:         {KindString, resolveID},
			AttrName:       {KindString, resolveName},
			AttrParameters: {KindMap, resolveParameters},
			AttrRunCount:   {KindInt, resolveRunCount},
			AttrStartTime:  {KindTime, resolveStartTime},
			AttrTags:       {KindStringList, resolveTags},
			AttrTaskName:   {KindString, resolveTaskName},
		},
		env:    env,
		logger: logger.With().Str("component", "taskrun").Logger(),
	}
}

// Resolve returns the value of attr for the task run active on ctx.
//
// A registered attribute resolves against the run context, or to its neutral
// default when no run is active; if its override variable is set, the
// override is coerced to the attribute's declared kind and returned instead.
// An unregistered name resolves to its raw override value when one is set
// and fails with ErrUnknownAttribute otherwise.
func (r *Resolver) Resolve(ctx context.Context, attr Attr) (any, error) {
	key := OverrideKey(attr)
	raw, overridden := r.env.Lookup(key)

	f, registered := r.fields[attr]
	if !registered {
		if overridden {
			return raw, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, attr)
	}

	rc, _ := runctx.FromContext(ctx)
	real := f.resolve(rc)
	if !overridden {
		return real, nil
	}

	val, err := coerce(attr, f.kind, raw)
	if err != nil {
		return nil, err
	}
	r.logger.Debug().
		Str("attribute", string(attr)).
		Str("key", key).
		Str("kind", f.kind.String()).
		Msg("override applied")
	return val, nil
}

// Names returns every registered attribute in lexicographic order. The
// result is independent of the active run context and of any overrides.
func (r *Resolver) Names() []Attr {
	names := make([]Attr, 0, len(r.fields))
	for attr := range r.fields {
		names = append(names, attr)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Default resolves against the process environment without logging.
var Default = NewResolver(nil, zerolog.Nop())

// Resolve resolves attr with the Default resolver.
func Resolve(ctx context.Context, attr Attr) (any, error) {
	return Default.Resolve(ctx, attr)
}

// Names lists the registered attributes of the Default resolver.
func Names() []Attr {
	return Default.Names()
}

func resolveID(rc *runctx.RunContext) any {
	if rc == nil {
		return ""
	}
	return rc.TaskRun.ID.String()
}

func resolveName(rc *runctx.RunContext) any {
	if rc == nil {
		return nil
	}
	return rc.TaskRun.Name
}

func resolveParameters(rc *runctx.RunContext) any {
	if rc == nil {
		return map[string]any{}
	}
	return rc.Parameters
}

func resolveRunCount(rc *runctx.RunContext) any {
	if rc == nil {
		return 0
	}
	return rc.TaskRun.RunCount
}

func resolveStartTime(rc *runctx.RunContext) any {
	if rc == nil {
		return time.Time{}
	}
	return rc.TaskRun.StartTime
}

func resolveTags(rc *runctx.RunContext) any {
	if rc == nil {
		return []string{}
	}
	return rc.TaskRun.Tags
}

func resolveTaskName(rc *runctx.RunContext) any {
	if rc == nil {
		return nil
	}
	return rc.Task.Name
}
