package javascript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/hestjs/hestjs-website/config"
	"github.com/hestjs/hestjs-website/site"
	"github.com/stretchr/testify/require"
)

func TestCompileTargetsBundlesSiteScripts(t *testing.T) {
	t.Parallel()

	assets, err := CompileTargets(site.FS(), map[string]config.JavascriptTarget{
		"main": {Source: "javascript/src/main.js", OutDir: "static/js"},
	}, false)
	require.NoError(t, err)
	require.Len(t, assets, 2)

	scripts := Scripts(assets)
	require.Len(t, scripts, 1)
	require.True(t, strings.HasPrefix(scripts[0], "/static/js/main_"), scripts[0])
	require.True(t, strings.HasSuffix(scripts[0], ".js"), scripts[0])

	var bundle, sourceMap Asset
	for _, a := range assets {
		if a.IsMap {
			sourceMap = a
		} else {
			bundle = a
		}
	}
	require.Equal(t, bundle.PublicPath+".map", sourceMap.PublicPath)

	js := string(bundle.Contents)
	require.Contains(t, js, "[data-copy]")
	require.Contains(t, js, "IntersectionObserver")
	require.Contains(t, js, "Failed to copy")
	require.True(t, strings.HasSuffix(js, "//# sourceMappingURL="+filepath.Base(bundle.PublicPath)+".map"))
}

func TestCompileTargetsReportsUnresolvedImport(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"src/main.js": &fstest.MapFile{Data: []byte("import { x } from './missing.js';\nconsole.log(x);\n")},
	}

	_, err := CompileTargets(fsys, map[string]config.JavascriptTarget{
		"main": {Source: "src/main.js", OutDir: "js"},
	}, true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "javascript target main")
}

func TestWriteAssets(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := WriteAssets(dir, []Asset{{PublicPath: "/static/js/main_abc.js", Contents: []byte("x")}})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "static", "js", "main_abc.js"))
	require.NoError(t, err)
	require.Equal(t, "x", string(data))
}
