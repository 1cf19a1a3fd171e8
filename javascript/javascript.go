package javascript

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/hestjs/hestjs-website/config"
	"github.com/pkg/errors"
)

const siteNamespace = "site"

// Asset is one emitted bundle or source map.
type Asset struct {
	Target     string
	PublicPath string
	Contents   []byte
	IsMap      bool
}

// CompileTargets bundles every target from fsys. Output names carry the
// content hash so they can be cached forever.
func CompileTargets(fsys fs.FS, targets map[string]config.JavascriptTarget, prod bool) ([]Asset, error) {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	var assets []Asset
	for _, targetName := range names {
		target := targets[targetName]
		emitted, err := compileTarget(fsys, targetName, target, prod)
		if err != nil {
			return nil, errors.Wrapf(err, "javascript target %s", targetName)
		}
		assets = append(assets, emitted...)
	}

	return assets, nil
}

func compileTarget(fsys fs.FS, targetName string, target config.JavascriptTarget, prod bool) ([]Asset, error) {
	result := api.Build(api.BuildOptions{
		EntryPointsAdvanced: []api.EntryPoint{{InputPath: target.Source, OutputPath: targetName}},
		Bundle:              true,
		MinifyWhitespace:    prod,
		MinifyIdentifiers:   prod,
		MinifySyntax:        prod,
		Format:              api.FormatIIFE,
		Engines: []api.Engine{
			{Name: api.EngineChrome, Version: "100"},
			{Name: api.EngineFirefox, Version: "100"},
			{Name: api.EngineSafari, Version: "15"},
			{Name: api.EngineEdge, Version: "100"},
		},
		Sourcemap: api.SourceMapExternal,
		Write:     false,
		Outdir:    target.OutDir,
		Plugins:   []api.Plugin{fsPlugin(fsys)},
		LogLevel:  api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		msgs := api.FormatMessages(result.Errors, api.FormatMessagesOptions{Kind: api.ErrorMessage})
		return nil, errors.New(strings.TrimSpace(strings.Join(msgs, "\n")))
	}

	// Bundles first so their hashes are known when the maps are named.
	var regularFiles []api.OutputFile
	var mapFiles []api.OutputFile
	for _, out := range result.OutputFiles {
		if strings.EqualFold(filepath.Ext(out.Path), ".map") {
			mapFiles = append(mapFiles, out)
		} else {
			regularFiles = append(regularFiles, out)
		}
	}
	sortedFiles := append(regularFiles, mapFiles...)

	srcToHash := make(map[string]string)
	assets := make([]Asset, 0, len(sortedFiles))

	for _, out := range sortedFiles {
		base := filepath.Base(out.Path)
		ext := base[strings.Index(base, "."):]
		isMap := ext == ".js.map"
		fileNameWithoutExt := base[:len(base)-len(ext)]

		var hashForFileName string
		if isMap {
			hashForFileName = srcToHash[fileNameWithoutExt]
			if hashForFileName == "" {
				return nil, errors.Errorf("source map %s can not find hash for its source file", fileNameWithoutExt)
			}
		} else {
			hashForFileName = strings.ReplaceAll(out.Hash, "/", "")
			srcToHash[fileNameWithoutExt] = hashForFileName
		}

		name := fmt.Sprintf("%s_%s%s", fileNameWithoutExt, hashForFileName, ext)
		contents := out.Contents
		if !isMap {
			contents = append(append([]byte{}, out.Contents...), []byte("//# sourceMappingURL="+name+".map")...)
		}

		assets = append(assets, Asset{
			Target:     targetName,
			PublicPath: "/" + path.Join(filepath.ToSlash(target.OutDir), name),
			Contents:   contents,
			IsMap:      isMap,
		})
	}

	return assets, nil
}

// fsPlugin resolves entry points and relative imports against fsys so the
// bundle can be built from embedded sources.
func fsPlugin(fsys fs.FS) api.Plugin {
	return api.Plugin{
		Name: "site-fs",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: ".*"}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				if args.Kind == api.ResolveEntryPoint {
					return api.OnResolveResult{Path: path.Clean(args.Path), Namespace: siteNamespace}, nil
				}
				if strings.HasPrefix(args.Path, "./") || strings.HasPrefix(args.Path, "../") {
					return api.OnResolveResult{
						Path:      path.Join(path.Dir(args.Importer), args.Path),
						Namespace: siteNamespace,
					}, nil
				}
				return api.OnResolveResult{}, errors.Errorf("cannot resolve %q from %s: only relative imports are supported", args.Path, args.Importer)
			})

			build.OnLoad(api.OnLoadOptions{Filter: ".*", Namespace: siteNamespace}, func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				data, err := fs.ReadFile(fsys, args.Path)
				if err != nil {
					return api.OnLoadResult{}, errors.WithStack(err)
				}
				contents := string(data)
				return api.OnLoadResult{Contents: &contents, Loader: api.LoaderJS}, nil
			})
		},
	}
}

// Scripts returns the public paths of the bundles (not the maps).
func Scripts(assets []Asset) []string {
	var out []string
	for _, a := range assets {
		if !a.IsMap {
			out = append(out, a.PublicPath)
		}
	}
	return out
}

// WriteAssets writes assets below dir using their public paths.
func WriteAssets(dir string, assets []Asset) error {
	for _, a := range assets {
		dest := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(a.PublicPath, "/")))
		if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
			return errors.WithStack(err)
		}
		if err := os.WriteFile(dest, a.Contents, 0644); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
