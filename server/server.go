// Package server shows a rendered chart in a browser, for sessions where no
// window can be opened (for example over ssh with a forwarded port).
package server

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/carbocation/pfx"
)

type logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// Server holds one rendered chart and the page that displays it. The session
// ends when the page's close button is pressed.
type Server struct {
	Title string

	png  []byte
	tpl  *template.Template
	log  logger
	done chan struct{}
	once sync.Once
}

// New prepares a server for the PNG-encoded chart.
func New(title string, png []byte) *Server {
	return &Server{
		Title: title,
		png:   png,
		tpl:   template.Must(template.New("index.html").Parse(indexHTML)),
		log:   log.New(os.Stderr, log.Prefix(), log.Ldate|log.Ltime),
		done:  make(chan struct{}),
	}
}

// Done is closed once the viewer has been closed from the page.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) close() {
	s.once.Do(func() { close(s.done) })
}

// Serve listens on addr and blocks until the page is closed, ctx is
// cancelled, or the listener fails.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return pfx.Err(err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Router()}

	errs := make(chan error, 1)
	go func() {
		s.log.Println("Serving the chart on", ln.Addr().String())
		errs <- srv.Serve(ln)
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return pfx.Err(err)
	case <-s.done:
		s.log.Println("Viewer closed")
	case <-ctx.Done():
		s.log.Println("Interrupted:", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return pfx.Err(err)
	}

	return nil
}
