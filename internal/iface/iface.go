// Package iface builds and serializes a module's interface (spec.md
// §4.8): the exported function schemes, type declarations, class
// declarations, instance heads, and process declarations left over
// after a successful elaboration, once the scratch inference state
// (the substitution, the fresh-variable counter) is discarded.
//
// Grounded on the teacher's internal/iface (Iface/IfaceItem/
// ConstructorScheme), rewritten against vaisto's typedast.Module instead
// of the teacher's lowered core.Program: the teacher's GlobalRef
// (cross-module linker bookkeeping) and purity tracking have no
// equivalent here — vaisto's elaborator has no effect system and no
// evaluator stage (internal/core and internal/link were dropped
// wholesale, see DESIGN.md), so an interface exists purely to persist
// and re-display a module's typed signature, not to drive a linker.
package iface

import (
	"sort"

	"github.com/vaisto-lang/vaisto/internal/classes"
	"github.com/vaisto-lang/vaisto/internal/typedast"
)

// Interface is a module's externally visible, typed surface.
type Interface struct {
	Version   int                      `yaml:"version"`
	Module    string                   `yaml:"module"`
	Exports   []FunctionExport         `yaml:"exports,omitempty"`
	Types     []TypeExport             `yaml:"types,omitempty"`
	Classes   []ClassExport            `yaml:"classes,omitempty"`
	Instances []InstanceExport         `yaml:"instances,omitempty"`
	Processes []ProcessExport          `yaml:"processes,omitempty"`
}

// FunctionExport is one exported `defn`'s generalized scheme, rendered
// to its canonical string form (e.g. "forall t1. t1 -> t1") — schemes
// are immutable once generalized, so the string form is a faithful,
// stable snapshot for persistence and display.
type FunctionExport struct {
	Name   string `yaml:"name"`
	Scheme string `yaml:"scheme"`
}

// CtorExport is one constructor of an exported deftype.
type CtorExport struct {
	Name   string   `yaml:"name"`
	Labels []string `yaml:"labels,omitempty"`
	Fields []string `yaml:"fields,omitempty"`
}

// TypeExport is one exported `deftype` declaration.
type TypeExport struct {
	Name     string       `yaml:"name"`
	IsRecord bool         `yaml:"is_record,omitempty"`
	Deriving []string     `yaml:"deriving,omitempty"`
	Ctors    []CtorExport `yaml:"ctors"`
}

// MethodExport is one method signature of an exported `defclass`.
type MethodExport struct {
	Name       string `yaml:"name"`
	Arity      int    `yaml:"arity"`
	HasDefault bool   `yaml:"has_default,omitempty"`
}

// ClassExport is one exported `defclass` declaration.
type ClassExport struct {
	Name    string         `yaml:"name"`
	TyVar   string         `yaml:"tyvar"`
	Methods []MethodExport `yaml:"methods"`
}

// InstanceExport is one exported `instance` declaration's head and its
// own constraints, without method bodies — a consumer resolves a
// constraint by (class, head) and re-elaborates the body only if it
// needs to inline it, not from the interface alone.
type InstanceExport struct {
	Class       string   `yaml:"class"`
	Head        string   `yaml:"head"`
	HeadArgs    []string `yaml:"head_args,omitempty"`
	Constraints []string `yaml:"constraints,omitempty"`
	Derived     bool     `yaml:"derived,omitempty"`
}

// ProcessExport is one exported `process` declaration's accepted
// message tags and state type.
type ProcessExport struct {
	Name        string   `yaml:"name"`
	StateType   string   `yaml:"state_type"`
	MessageTags []string `yaml:"message_tags,omitempty"`
}

// Build extracts module's interface. Only called after a successful
// elaboration (module.Ok()); the caller decides whether to persist an
// interface for a module that failed to elaborate (spec.md §6 doesn't,
// since an incomplete module's exports aren't trustworthy).
func Build(module *typedast.Module) *Interface {
	iface := &Interface{Version: InterfaceVersion, Module: module.Name}

	names := make([]string, 0, len(module.Exports))
	for name := range module.Exports {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		iface.Exports = append(iface.Exports, FunctionExport{Name: name, Scheme: module.Exports[name].String()})
	}

	typeNames := make([]string, 0, len(module.Deftypes))
	for name := range module.Deftypes {
		typeNames = append(typeNames, name)
	}
	sort.Strings(typeNames)
	for _, name := range typeNames {
		iface.Types = append(iface.Types, exportDeftype(module.Deftypes[name]))
	}

	if module.Classes != nil {
		for _, cls := range module.Classes.All() {
			iface.Classes = append(iface.Classes, exportClass(cls))
		}
	}

	if module.Instances != nil {
		for _, inst := range module.Instances.All() {
			iface.Instances = append(iface.Instances, exportInstance(inst))
		}
	}

	procNames := make([]string, 0, len(module.Processes))
	for name := range module.Processes {
		procNames = append(procNames, name)
	}
	sort.Strings(procNames)
	for _, name := range procNames {
		iface.Processes = append(iface.Processes, exportProcess(name, module.Processes[name]))
	}

	return iface
}

func exportDeftype(info *typedast.DeftypeInfo) TypeExport {
	te := TypeExport{Name: info.Name, IsRecord: info.IsRecord, Deriving: info.Deriving}
	for _, c := range info.Ctors {
		var fields []string
		for _, f := range c.Fields {
			fields = append(fields, f.String())
		}
		te.Ctors = append(te.Ctors, CtorExport{Name: c.Name, Labels: c.Labels, Fields: fields})
	}
	return te
}

func exportClass(cls *classes.Class) ClassExport {
	ce := ClassExport{Name: cls.Name, TyVar: cls.TyVar}
	methodNames := make([]string, 0, len(cls.Methods))
	for name := range cls.Methods {
		methodNames = append(methodNames, name)
	}
	sort.Strings(methodNames)
	for _, name := range methodNames {
		m, _ := cls.Method(name)
		ce.Methods = append(ce.Methods, MethodExport{Name: name, Arity: m.Arity, HasDefault: m.HasDefault})
	}
	return ce
}

func exportInstance(inst *classes.Instance) InstanceExport {
	ie := InstanceExport{Class: inst.Class, Head: inst.Head, HeadArgs: inst.HeadArgs, Derived: inst.Derived}
	for _, con := range inst.Constraints {
		ie.Constraints = append(ie.Constraints, con.Class+" "+con.Param)
	}
	return ie
}

func exportProcess(name string, info *typedast.ProcessInfo) ProcessExport {
	pe := ProcessExport{Name: name, StateType: info.StateType.String()}
	tags := make([]string, 0, len(info.MessageTag))
	for tag := range info.MessageTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	pe.MessageTags = tags
	return pe
}
