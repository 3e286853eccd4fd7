// Package terminal implements interactive prompts on the controlling terminal.
package terminal

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.trai.ch/upkeep/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Prompter implements ports.Prompter.
//
// When the input is a terminal, secrets are read with echo disabled.
// Otherwise input is read line by line, which keeps piped and scripted
// sessions working.
type Prompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer

	fd       int
	terminal bool
}

// New creates a Prompter reading from in and writing prompts to out.
func New(in *os.File, out io.Writer) *Prompter {
	fd := int(in.Fd()) //nolint:gosec // file descriptors fit in int
	return &Prompter{
		in:       bufio.NewReader(in),
		out:      out,
		fd:       fd,
		terminal: term.IsTerminal(fd),
	}
}

// NewFromReader creates a Prompter over a plain reader. Secrets are read as
// ordinary lines.
func NewFromReader(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
}

// Confirm prints "question [y/N] --> " and reads the answer.
// End of input counts as no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintf(p.out, "%s [y/N] --> ", question)

	line, err := p.await(ctx, p.readLine)
	if err != nil {
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(p.out)
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(string(line))) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ReadSecret prints prompt and reads one line without echo.
func (p *Prompter) ReadSecret(ctx context.Context, prompt string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprint(p.out, prompt)

	if !p.terminal {
		return p.await(ctx, p.readLine)
	}

	state, err := term.GetState(p.fd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPromptFailed.Error())
	}

	secret, err := p.await(ctx, func() ([]byte, error) {
		return term.ReadPassword(p.fd)
	})
	if err != nil {
		// An abandoned ReadPassword leaves echo off.
		_ = term.Restore(p.fd, state)
	}
	_, _ = fmt.Fprintln(p.out)
	return secret, err
}

// readLine copies one line out of the buffered reader and zeroes the bytes it
// consumed, so a piped secret does not linger in the reader's buffer.
func (p *Prompter) readLine() ([]byte, error) {
	var line []byte
	for {
		chunk, err := p.in.ReadSlice('\n')
		line = appendWiped(line, chunk)
		domain.Wipe(chunk)

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == nil, errors.Is(err, io.EOF) && len(line) > 0:
			return bytes.TrimRight(line, "\r\n"), nil
		default:
			domain.Wipe(line)
			return nil, err
		}
	}
}

// appendWiped appends chunk to line. When line has to move, the old backing
// array is zeroed first.
func appendWiped(line, chunk []byte) []byte {
	if len(line)+len(chunk) <= cap(line) {
		return append(line, chunk...)
	}
	grown := make([]byte, len(line), 2*cap(line)+len(chunk))
	copy(grown, line)
	domain.Wipe(line)
	return append(grown, chunk...)
}

// await runs read in the background so a cancelled ctx releases the caller
// even though the read itself cannot be interrupted.
func (p *Prompter) await(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		data, err := read()
		ch <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil && !errors.Is(r.err, io.EOF) {
			return nil, zerr.Wrap(r.err, domain.ErrPromptFailed.Error())
		}
		return r.data, r.err
	}
}
