package js

import (
	"strings"

	"github.com/dop251/goja"

	"github.com/solomonrothman/sposit/pkg/sposit"
)

// registerColumns installs the global sposit() function. Calling it merges
// the given option object over the defaults, reconfigures the column engine
// wholesale, and runs a recomputation pass. The query surface hangs off the
// function object:
//
//	sposit({minColumnWidth: 200, maxColumns: 4});
//	sposit.getOptions().minColumnWidth;              // 200
//	sposit.getContainerElements(null, null, "last"); // [element]
//	sposit.recomputeColumns(".grid", 3);
func registerColumns(vm *goja.Runtime, ctx *domContext, columns *sposit.Engine) {
	fn := func(call goja.FunctionCall) goja.Value {
		var raw map[string]interface{}
		if len(call.Arguments) > 0 {
			if m, ok := call.Arguments[0].Export().(map[string]interface{}); ok {
				raw = m
			}
		}
		columns.Configure(sposit.ParseOptions(raw))
		columns.Recompute()
		return goja.Undefined()
	}

	obj := vm.ToValue(fn).ToObject(vm)

	obj.Set("getOptions", func(call goja.FunctionCall) goja.Value {
		o := columns.Options()
		var max interface{} = "dynamic"
		if o.MaxColumns.Bounded() {
			max = int(o.MaxColumns)
		}
		return vm.ToValue(map[string]interface{}{
			"minColumnWidth":    o.MinColumnWidth,
			"columnOffset":      o.ColumnOffset,
			"maxColumns":        max,
			"wrapperSelector":   o.WrapperSelector,
			"containerSelector": o.ContainerSelector,
			"respondOnResize":   o.RespondOnResize,
			"disperseEvenly":    o.DisperseEvenly,
		})
	})

	obj.Set("getContainerElements", func(call goja.FunctionCall) goja.Value {
		wrapper := optionalString(call, 0)
		container := optionalString(call, 1)
		order := sposit.SelectAll
		switch strings.ToLower(optionalString(call, 2)) {
		case "first":
			order = sposit.SelectFirst
		case "last":
			order = sposit.SelectLast
		}
		return ctx.elementArray(columns.ContainerElements(wrapper, container, order))
	})

	obj.Set("recomputeColumns", func(call goja.FunctionCall) goja.Value {
		wrapper := optionalString(call, 0)
		max := columns.Options().MaxColumns
		if len(call.Arguments) > 1 && !goja.IsUndefined(call.Arguments[1]) && !goja.IsNull(call.Arguments[1]) {
			if n := call.Arguments[1].ToInteger(); n >= 1 {
				max = sposit.MaxColumns(n)
			} else {
				max = sposit.DynamicColumns
			}
		}
		columns.RecomputeWith(wrapper, max)
		return goja.Undefined()
	})

	vm.Set("sposit", obj)
}

// optionalString reads a string argument, treating missing/null/undefined
// as empty.
func optionalString(call goja.FunctionCall, idx int) string {
	if len(call.Arguments) <= idx {
		return ""
	}
	arg := call.Arguments[idx]
	if goja.IsUndefined(arg) || goja.IsNull(arg) {
		return ""
	}
	return arg.String()
}
