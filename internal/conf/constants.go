package conf

// InitSize - Number of buckets a new (or reassigned) hash map starts out with
const InitSize int = 2

// RehashFactor - Buckets are doubled whenever buckets < records * RehashFactor after an insert
const RehashFactor int = 2

// BlockShift - Log2 of the number of entries in each element store block
const BlockShift uint = 6

// BlockSize - Number of entries in each element store block, blocks are never moved once allocated
const BlockSize int = 1 << BlockShift

// BlockMask - Mask giving the offset of an entry within its block
const BlockMask int = BlockSize - 1

// NoEntry - Index used to mark the absence of an entry (end of list, end position)
const NoEntry int32 = -1
