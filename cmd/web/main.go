package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/tomz197/mythbusters/internal/config"
	"github.com/tomz197/mythbusters/internal/logger"
)

const (
	defaultHost    = "0.0.0.0"
	defaultPort    = "8080"
	defaultSSHPort = "2222"
)

//go:embed index.html
var htmlPage string

// renderPage fills the connection details into the landing page.
func renderPage(sshHost, sshPort string) string {
	return strings.NewReplacer(
		"{{.SSHHost}}", sshHost,
		"{{.SSHPort}}", sshPort,
	).Replace(htmlPage)
}

func main() {
	logger.Init(nil)
	log := logger.Component("web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_DISPLAY_PORT", defaultSSHPort)
	page := renderPage(sshHost, sshPort)

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})

	addr := net.JoinHostPort(host, port)
	log.Infof("starting web server on http://%s", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
