/*
Package redblacktree is the friendly facade over rbtree: three ready-made
collection types built on the engine's three lookup modes — OrderedMap (an
intrinsic-key map), Sequence (an order-statistic, positional list), and
WeightedSequence (a list addressed by cumulative weight) — plus constructors
that build any of them from an already-ordered slice in a single bulk pass
instead of n independent searches.

Most callers should reach for one of these instead of importing rbtree
directly; rbtree stays available for anyone who needs a fourth lookup mode
this package doesn't name.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, RedBlackTree contributors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package redblacktree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is this package's error type.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrKeyNotFound is the error value for a lookup of a key which is not
// present. OrderedMap's Get and Delete report a miss through their boolean
// result and do not return it.
const ErrKeyNotFound = TreeError("key not found")

// ErrIndexOutOfBounds is the error value for a Sequence or WeightedSequence
// position outside the collection. Sequence.At, Sequence.RemoveAt and
// WeightedSequence.SeekWeight report such a position through their boolean
// result and do not return it.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// such as an unsorted slice passed to one of the *From constructors.
const ErrIllegalArguments = TreeError("illegal arguments")
