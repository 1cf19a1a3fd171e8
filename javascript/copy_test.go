package javascript

import (
	"strings"
	"testing"

	"github.com/dop251/goja"
	"github.com/evanw/esbuild/pkg/api"
	"github.com/hestjs/hestjs-website/site"
	"github.com/stretchr/testify/require"
)

// copyHarness fakes the element, clipboard, timers and console that
// createCopyState touches. Timers fire only when advance moves the clock.
const copyHarness = `
var logged = [];
var console = { error: function () { logged.push(Array.prototype.slice.call(arguments).join('')); } };

var now = 0, nextTimer = 1, fired = 0, cleared = [], pending = {};
var timers = {
  setTimeout: function (fn, ms) {
    var id = nextTimer++;
    pending[id] = { fn: fn, at: now + ms };
    return id;
  },
  clearTimeout: function (id) {
    cleared.push(id);
    delete pending[id];
  }
};
function advance(ms) {
  now += ms;
  Object.keys(pending).forEach(function (id) {
    var t = pending[id];
    if (t && t.at <= now) {
      delete pending[id];
      fired++;
      t.fn();
    }
  });
}
function pendingCount() { return Object.keys(pending).length; }

function button() {
  var mark = { hidden: true };
  return {
    mark: mark,
    title: '',
    dataset: { copyText: 'npx create-hest-app@latest my-app', copyResetMs: '2000', copyHint: 'Click to copy', copiedLabel: 'Copied!' },
    querySelector: function () { return mark; }
  };
}

var written = [];
var el = button();
var state = copyModule.createCopyState(el, { writeText: function (t) { written.push(t); return Promise.resolve(); } }, timers);

var failing = button();
var failingState = copyModule.createCopyState(failing, { writeText: function () { return Promise.reject(new Error('denied')); } }, timers);
`

func newCopyRuntime(t *testing.T) *goja.Runtime {
	t.Helper()

	result := api.Build(api.BuildOptions{
		EntryPoints: []string{"javascript/src/copy.js"},
		Bundle:      true,
		Format:      api.FormatIIFE,
		GlobalName:  "copyModule",
		Target:      api.ES2017,
		Write:       false,
		Plugins:     []api.Plugin{fsPlugin(site.FS())},
		LogLevel:    api.LogLevelSilent,
	})
	require.Empty(t, result.Errors)
	require.Len(t, result.OutputFiles, 1)

	vm := goja.New()
	_, err := vm.RunString(string(result.OutputFiles[0].Contents))
	require.NoError(t, err)
	_, err = vm.RunString(copyHarness)
	require.NoError(t, err)
	return vm
}

// run evaluates src; pending promise jobs settle before it returns.
func run(t *testing.T, vm *goja.Runtime, src string) interface{} {
	t.Helper()
	v, err := vm.RunString(src)
	require.NoError(t, err)
	return v.Export()
}

func TestCopyStateSetsFlagAndResetsAfterDelay(t *testing.T) {
	t.Parallel()
	vm := newCopyRuntime(t)

	require.Equal(t, "false", run(t, vm, "el.dataset.copied"))

	run(t, vm, "state.copy()")
	require.Equal(t, "true", run(t, vm, "el.dataset.copied"))
	require.Equal(t, false, run(t, vm, "el.mark.hidden"))
	require.Equal(t, "Copied!", run(t, vm, "el.title"))
	require.Equal(t, "npx create-hest-app@latest my-app", run(t, vm, "written[0]"))

	run(t, vm, "advance(1999)")
	require.Equal(t, "true", run(t, vm, "el.dataset.copied"))

	run(t, vm, "advance(1)")
	require.Equal(t, "false", run(t, vm, "el.dataset.copied"))
	require.Equal(t, true, run(t, vm, "el.mark.hidden"))
	require.EqualValues(t, 1, run(t, vm, "fired"))
}

func TestCopyStateRestartsTimerOnEachClick(t *testing.T) {
	t.Parallel()
	vm := newCopyRuntime(t)

	run(t, vm, "state.copy()")
	run(t, vm, "advance(1500)")
	run(t, vm, "state.copy()")

	require.EqualValues(t, 1, run(t, vm, "cleared.length"))
	require.EqualValues(t, 1, run(t, vm, "pendingCount()"))

	// 2000ms after the first click, but only 500ms after the second.
	run(t, vm, "advance(500)")
	require.Equal(t, "true", run(t, vm, "el.dataset.copied"))
	require.EqualValues(t, 0, run(t, vm, "fired"))

	run(t, vm, "advance(1499)")
	require.Equal(t, "true", run(t, vm, "el.dataset.copied"))

	run(t, vm, "advance(1)")
	require.Equal(t, "false", run(t, vm, "el.dataset.copied"))
	require.EqualValues(t, 1, run(t, vm, "fired"))
	require.EqualValues(t, 0, run(t, vm, "pendingCount()"))
}

func TestCopyStateLogsClipboardFailure(t *testing.T) {
	t.Parallel()
	vm := newCopyRuntime(t)

	run(t, vm, "failingState.copy()")

	require.Equal(t, "false", run(t, vm, "failing.dataset.copied"))
	require.Equal(t, true, run(t, vm, "failing.mark.hidden"))
	require.EqualValues(t, 0, run(t, vm, "pendingCount()"))
	require.EqualValues(t, 1, run(t, vm, "logged.length"))

	msg, ok := run(t, vm, "logged[0]").(string)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(msg, "Failed to copy: "), msg)
	require.Contains(t, msg, "denied")
}
