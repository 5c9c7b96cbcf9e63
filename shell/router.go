package shell

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/dsashell/ds/clist"
	"github.com/iotaledger/dsashell/ds/dlist"
	"github.com/iotaledger/dsashell/ds/list"
	"github.com/iotaledger/dsashell/ds/queue"
	"github.com/iotaledger/dsashell/ds/stack"
	"github.com/iotaledger/dsashell/ds/tokens"
	"github.com/iotaledger/dsashell/logger"
)

var (
	// ErrUsage is returned if a structure command misses its verb.
	ErrUsage = errors.New("missing subcommand")
	// ErrUnknownVerb is returned if the verb is not supported by the structure.
	ErrUnknownVerb = errors.New("unknown subcommand")
	// ErrUnknownStructure is returned if no structure with the given name exists.
	ErrUnknownStructure = errors.New("unknown structure")
)

// reverseFlag requests a descending sort.
const reverseFlag = "reverse"

// verb executes one structure operation. args holds everything after the verb.
type verb func(args []string) (string, error)

// Router owns one instance of every container and dispatches "<structure> <verb> [args...]" commands to them.
// Commands are executed one at a time.
type Router struct {
	mutex      sync.Mutex
	structures map[string]map[string]verb
	log        *logger.Logger

	Stack      *stack.Stack
	Queue      *queue.Queue
	LinkedList *list.SinglyLinkedList
	CList      *clist.CircularLinkedList
	DList      *dlist.DoublyLinkedList
}

// NewRouter creates a router with empty containers.
func NewRouter(log *logger.Logger) *Router {
	r := &Router{
		log:        log,
		Stack:      stack.New(),
		Queue:      queue.New(),
		LinkedList: list.New(),
		CList:      clist.New(),
		DList:      dlist.New(),
	}

	r.structures = map[string]map[string]verb{
		"stack":      r.stackVerbs(),
		"queue":      r.queueVerbs(),
		"linkedlist": reversibleVerbs(r.LinkedList),
		"clist":      chainVerbs(r.CList),
		"dlist":      reversibleVerbs(r.DList),
	}

	return r
}

// Handles reports whether name is a structure known to the router.
func (r *Router) Handles(name string) bool {
	_, exists := r.structures[name]

	return exists
}

// Structures returns the names of all structures.
func (r *Router) Structures() []string {
	names := make([]string, 0, len(r.structures))
	for name := range r.structures {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Verbs returns the sorted verbs supported by the structure.
func (r *Router) Verbs(structure string) []string {
	verbs := make([]string, 0, len(r.structures[structure]))
	for name := range r.structures[structure] {
		verbs = append(verbs, name)
	}
	sort.Strings(verbs)

	return verbs
}

// Execute runs the verb named by args[0] on the structure and returns the text to display, which may be empty.
func (r *Router) Execute(structure string, args []string) (string, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	verbs, exists := r.structures[structure]
	if !exists {
		return "", errors.Wrapf(ErrUnknownStructure, "%s", structure)
	}

	if len(args) == 0 {
		return "", errors.Wrapf(ErrUsage, "usage: %s <%s> [values...]", structure, strings.Join(r.Verbs(structure), "|"))
	}

	handler, exists := verbs[args[0]]
	if !exists {
		return "", errors.Wrapf(ErrUnknownVerb, "%s %s", structure, args[0])
	}

	r.log.Debugw("dispatching command", "structure", structure, "verb", args[0], "args", args[1:])

	output, err := handler(args[1:])
	if err != nil {
		r.log.Warnw("command failed", "structure", structure, "verb", args[0], "error", err)

		return "", err
	}

	return output, nil
}

// firstArg returns the search target, an empty token if none was given.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

// orderable is the part of the container contract shared by every structure.
type orderable interface {
	Display() []string
	Sort(reverse bool) error
	Search(target string) tokens.SearchResult
	BinarySearch(value string) (tokens.BinarySearchResult, error)
}

// commonVerbs registers display, sort, search and bsearch for the container.
func commonVerbs(container orderable, verbs map[string]verb) map[string]verb {
	verbs["display"] = func([]string) (string, error) {
		return formatSequence(container.Display()), nil
	}
	verbs["sort"] = func(args []string) (string, error) {
		if err := container.Sort(slices.Contains(args, reverseFlag)); err != nil {
			return "", err
		}

		return formatSequence(container.Display()), nil
	}
	verbs["search"] = func(args []string) (string, error) {
		return container.Search(firstArg(args)).String(), nil
	}
	verbs["bsearch"] = func(args []string) (string, error) {
		result, err := container.BinarySearch(firstArg(args))
		if err != nil {
			return "", err
		}

		return result.String(), nil
	}

	return verbs
}

func (r *Router) stackVerbs() map[string]verb {
	return commonVerbs(r.Stack, map[string]verb{
		"push": func(args []string) (string, error) {
			r.Stack.Push(args...)

			return "", nil
		},
		"pop": func([]string) (string, error) {
			return formatOptional(r.Stack.Pop()), nil
		},
		"peek": func([]string) (string, error) {
			return formatOptional(r.Stack.Peek()), nil
		},
		"trace": func([]string) (string, error) {
			return formatSequence(r.Stack.Trace()), nil
		},
	})
}

func (r *Router) queueVerbs() map[string]verb {
	return commonVerbs(r.Queue, map[string]verb{
		"enqueue": func(args []string) (string, error) {
			r.Queue.Enqueue(args...)

			return "", nil
		},
		"dequeue": func([]string) (string, error) {
			return formatOptional(r.Queue.Dequeue()), nil
		},
		"front": func([]string) (string, error) {
			return formatOptional(r.Queue.Front()), nil
		},
		"rear": func([]string) (string, error) {
			return formatOptional(r.Queue.Rear()), nil
		},
	})
}

// chain is the contract of the linked structures.
type chain interface {
	orderable
	Insert(values ...string)
	Delete(value string) bool
}

// reversible chains can be displayed from tail to head.
type reversible interface {
	chain
	ReverseDisplay() []string
}

func chainVerbs(container chain) map[string]verb {
	return commonVerbs(container, map[string]verb{
		"insert": func(args []string) (string, error) {
			container.Insert(args...)

			return "", nil
		},
		"delete": func(args []string) (string, error) {
			return formatBool(container.Delete(firstArg(args))), nil
		},
	})
}

func reversibleVerbs(container reversible) map[string]verb {
	verbs := chainVerbs(container)
	verbs["reverse"] = func([]string) (string, error) {
		return formatSequence(container.ReverseDisplay()), nil
	}

	return verbs
}

// Usage describes the structure commands for the help output.
func (r *Router) Usage() string {
	var b strings.Builder
	for _, name := range r.Structures() {
		fmt.Fprintf(&b, "  %-10s %s\n", name, strings.Join(r.Verbs(name), ", "))
	}

	return b.String()
}
