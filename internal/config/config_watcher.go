package config

import (
	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"
)

// WatchFile calls onChange each time filename is written or replaced.
func WatchFile(filename string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filename); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case event, more := <-watcher.Events:
				if !more {
					klog.Info("no more event from file watcher")
					return
				}
				klog.V(2).Info(event)
				if event.Op&fsnotify.Write == fsnotify.Write {
					onChange()
				}
				// editors replace the file, the old watch is gone with it
				if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
					if err := watcher.Add(filename); err != nil {
						klog.Errorf("re-watch %s: %v", filename, err)
						continue
					}
					onChange()
				}
			case err, more := <-watcher.Errors:
				if !more {
					klog.Info("no more event from error channel of file watcher")
					return
				}
				klog.Errorf("error from file watcher: %v", err)
			}
		}
	}()

	return nil
}
