// Package events merges keyboard input and a periodic tick into a single
// stream consumed by the dispatch loop.
//
// # Producers
//
// A Mux owns two goroutines:
//
//   - the keyboard reader performs blocking reads on the terminal input,
//     decodes the bytes into keys and emits one Input event per key;
//   - the ticker emits a Tick every TickInterval whether or not keys arrive.
//
// Events from one producer keep their relative order. Nothing orders events
// across producers: a Tick may land between two keys typed in one burst.
//
// # Lifecycle
//
// Stop cancels both producers, waits for them to exit, discards anything
// still queued and closes the stream. After Stop returns Next reports
// ok=false and no goroutine from the Mux is left running. A Mux is never
// restarted; the dispatch loop builds a new one after every Refresh effect
// because a child process may have changed the terminal mode underneath it.
//
// The configured exit key also ends the keyboard reader on its own: the key
// is delivered as the reader's last Input and the reader returns. Ticks keep
// flowing until Stop.
//
// # Known limitation
//
// The keyboard reader sits in a read syscall most of the time. Input is
// wrapped with cancelreader so Stop can interrupt that read on platforms
// that support it (epoll, kqueue, select on files and pipes). For inputs
// cancelreader cannot interrupt, Stop blocks until the next byte or EOF
// reaches the reader.
//
// # Effects
//
// Effect is the vocabulary the navigation layer uses to tell the dispatch
// loop what to do with the Mux after an event: nothing, bubble to the parent
// scope, quit, or refresh (stop this Mux and build a new one).
package events
