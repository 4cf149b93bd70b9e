package layout

/*

# Candy machine account layout

This package computes sizes and offsets for the candy machine account. The
account is a single preallocated, zero-filled byte region:

	+----------------------+  0
	| discriminator (8B)   |
	| MachineRecord        |  borsh, at most ConfigArrayStart bytes
	+----------------------+  ConfigArrayStart
	| line count (u32)     |
	+----------------------+  LinesStart
	| config lines         |  n * ConfigLineSize
	+----------------------+  UsedCountOffset(n)
	| used count (u32)     |
	+----------------------+  BitmapStart(n)
	| used bitmap          |  n/8 + 1 reserved, ceil(n/8) meaningful
	+----------------------+
	| index len (u32)      |
	+----------------------+  IndexArrayStart(n)
	| index array          |  n * u32
	+----------------------+

When the machine uses hidden settings the account ends at ConfigArrayStart.

## Two answers for "required size"

MinimumCompatSize is what an account must have been allocated with for
initialization to proceed. Older command line tools did not allocate the index
array, so this figure reserves twice the bitmap term instead of the index
array. FullAllocatedSize is the size the account must eventually be resized to
before any index write. The two diverge on purpose and must not be unified:
accounts created against the compat figure are still live.

All arithmetic derived from items available is checked and fails with
ErrNumericalOverflow rather than wrapping.

*/
