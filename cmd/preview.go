package cmd

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve a built site from the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = env.Port
		}
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = env.PublicDir
		}

		logger.Info("previewing build", zap.String("dir", dir))
		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           previewRouter(dir),
			ReadHeaderTimeout: 10 * time.Second,
		}
		return listen(cmd.Context(), srv)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("port", "p", "", "Port to run the server on (defaults to $PORT or 9010)")
	previewCmd.Flags().StringP("dir", "d", "", "Built site directory (defaults to $PUBLIC_DIR or ./public)")
}

// previewRouter serves dir the way a static host would: directories resolve
// to index.html and misses get the nearest locale's 404.html.
func previewRouter(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))

	router := httprouter.New()
	router.GET("/*filepath", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !builtFileExists(dir, ps.ByName("filepath")) {
			serveBuiltNotFound(w, r, dir, ps.ByName("filepath"))
			return
		}
		files.ServeHTTP(w, r)
	})
	return router
}

func builtFileExists(dir, urlPath string) bool {
	name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+urlPath)))
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err = os.Stat(filepath.Join(name, "index.html"))
		return err == nil
	}
	return true
}

func serveBuiltNotFound(w http.ResponseWriter, r *http.Request, dir, urlPath string) {
	candidates := []string{filepath.Join(dir, "404.html")}
	if first := strings.SplitN(strings.TrimPrefix(urlPath, "/"), "/", 2)[0]; first != "" {
		candidates = append([]string{filepath.Join(dir, first, "404.html")}, candidates...)
	}

	for _, c := range candidates {
		page, err := os.ReadFile(c)
		if err != nil {
			continue
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(page)
		return
	}
	http.NotFound(w, r)
}
