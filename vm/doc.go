// Package vm implements the word machine: a growable word memory, an
// instruction decoder, and the fetch-decode-execute engine.
//
// Programs are flat sequences of signed 64-bit words. Each instruction
// word carries an opcode in its low two decimal digits and one addressing
// mode digit per operand above them. The machine talks to its environment
// only through the Handler capability: one operation to request the next
// input word, one to emit an output word.
package vm
