// devwatch is the development reload supervisor. It is a separate
// process, not part of the backend: it watches the source tree and
// restarts the server command whenever a watched file changes, the
// same workflow a reload-enabled app server gives you. Excluded
// directories (dependency caches, VCS metadata) are never watched.
package main

import (
	"flag"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const debounce = 300 * time.Millisecond

func main() {
	exclude := flag.String("exclude", "venv,.git", "comma-separated directory names to exclude from watching")
	root := flag.String("root", ".", "directory tree to watch")
	command := flag.String("cmd", "go run ./cmd/backend", "server command to run and restart")
	flag.Parse()

	excludes := splitExcludes(*exclude)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logrus.Fatalf("watcher init failed: %v", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, *root, excludes); err != nil {
		logrus.Fatalf("watch setup failed: %v", err)
	}

	child, err := start(*command)
	if err != nil {
		logrus.Fatalf("server start failed: %v", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	var timer *time.Timer
	restart := make(chan struct{}, 1)

	for {
		select {
		case ev := <-watcher.Events:
			if !relevant(ev, excludes) {
				continue
			}
			// new directories need their own watch
			if ev.Op.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = watchTree(watcher, ev.Name, excludes)
				}
			}
			logrus.Infof("change detected: %s", ev.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case restart <- struct{}{}:
				default:
				}
			})
		case err := <-watcher.Errors:
			logrus.Warnf("watch error: %v", err)
		case <-restart:
			logrus.Info("restarting server")
			stop(child)
			child, err = start(*command)
			if err != nil {
				logrus.Fatalf("server restart failed: %v", err)
			}
		case <-sig:
			stop(child)
			return
		}
	}
}

func splitExcludes(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// excluded reports whether any element of path matches one of the
// exclusion patterns.
func excluded(path string, excludes []string) bool {
	for _, elem := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
		for _, pat := range excludes {
			if ok, _ := filepath.Match(pat, elem); ok {
				return true
			}
		}
	}
	return false
}

// relevant filters watch events down to source and config changes.
func relevant(ev fsnotify.Event, excludes []string) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	if excluded(ev.Name, excludes) {
		return false
	}
	switch filepath.Ext(ev.Name) {
	case ".go", ".toml":
		return true
	}
	// directory events matter for watch registration
	fi, err := os.Stat(ev.Name)
	return err == nil && fi.IsDir()
}

func watchTree(watcher *fsnotify.Watcher, root string, excludes []string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && excluded(path, excludes) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func start(command string) (*exec.Cmd, error) {
	parts := strings.Fields(command)
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// own process group so stop() reaches grandchildren of `go run`
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	logrus.Infof("server started (pid %d)", cmd.Process.Pid)
	return cmd, nil
}

func stop(cmd *exec.Cmd) {
	if cmd == nil || cmd.Process == nil {
		return
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		_, _ = cmd.Process.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
