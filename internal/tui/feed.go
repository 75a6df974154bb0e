package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskboard/internal/domain"
)

// feed bridges store notifications into the bubbletea loop.
// It holds at most one pending list; a newer list replaces an unread one.
type feed struct {
	ch          chan []domain.Issue
	done        chan struct{}
	unsubscribe func()
	closeOnce   sync.Once
}

// newFeed subscribes to issues. The current list is pending immediately.
func newFeed(issues domain.IssueStore) *feed {
	f := &feed{
		ch:   make(chan []domain.Issue, 1),
		done: make(chan struct{}),
	}
	f.unsubscribe = issues.Subscribe(f.push)
	return f
}

// push never blocks. The store notifies one round at a time, so push has a
// single producer.
func (f *feed) push(issues []domain.Issue) {
	for {
		select {
		case f.ch <- issues:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

// wait returns a command delivering the next pending list.
func (f *feed) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case issues := <-f.ch:
			return MsgIssuesUpdated{Issues: issues}
		case <-f.done:
			return nil
		}
	}
}

func (f *feed) close() {
	f.closeOnce.Do(func() {
		f.unsubscribe()
		close(f.done)
	})
}
