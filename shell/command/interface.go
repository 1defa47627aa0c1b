/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package command models the commands an interactive shell can expose over
// a running process: a name, a description, and a run function writing to
// the shell's output and error streams.
package command

import "io"

// FctCommand is the run function of a command. It writes its output to buf
// and its failures to err.
type FctCommand func(buf io.Writer, err io.Writer, args []string)

// CommandInfo describes a command for listings and help output.
type CommandInfo interface {
	// Name returns the command keyword.
	Name() string

	// Describe returns the one-line command description.
	Describe() string
}

// Command is a runnable shell command.
type Command interface {
	CommandInfo

	// Run executes the command with the given arguments.
	Run(buf io.Writer, err io.Writer, args []string)
}

// Info returns a CommandInfo with the given name and description.
func Info(name, description string) CommandInfo {
	return &cmd{
		n: name,
		d: description,
	}
}

// New returns a Command running the given function.
func New(name, description string, fct FctCommand) Command {
	return &cmd{
		n: name,
		d: description,
		f: fct,
	}
}

type cmd struct {
	n string
	d string
	f FctCommand
}

func (o *cmd) Name() string {
	return o.n
}

func (o *cmd) Describe() string {
	return o.d
}

func (o *cmd) Run(buf io.Writer, err io.Writer, args []string) {
	if o.f == nil {
		return
	}

	o.f(buf, err, args)
}
