package conf

// MinCapacity - Default minimum capacity of a table, the capacity in use is the nearest prime at or above it
const MinCapacity int64 = 10

// MaxCapacity - Largest capacity a table may be given or loaded with
const MaxCapacity int64 = 1 << 30

// AbsoluteMinCapacity - Smallest capacity ever allowed, Double Hashing needs a table size above 2
const AbsoluteMinCapacity int64 = 3

// MaxLoadFactor - Default load factor above which a table grows before inserting
const MaxLoadFactor float64 = 0.7

// MinLoadFactor - Default load factor below which a table may shrink if shrinking is enabled
const MinLoadFactor float64 = 0.3

// MaxLoadFactorLower - Lower bound (inclusive) for a configured max load factor
const MaxLoadFactorLower float64 = 0.4

// MaxLoadFactorUpper - Upper bound (inclusive) for a configured max load factor
const MaxLoadFactorUpper float64 = 0.95

// MinLoadFactorLower - Lower bound (inclusive) for a configured min load factor
const MinLoadFactorLower float64 = 0.1

// MinLoadFactorUpper - Upper bound (inclusive) for a configured min load factor
const MinLoadFactorUpper float64 = 0.5

// GrowthFactor - Capacity multiplier used when a table grows
const GrowthFactor int64 = 2

// PrimarySeed - Seed given to the hash function for the home bucket
const PrimarySeed uint64 = 0

// SecondarySeed - Seed given to the hash function for the Double Hashing probe step
const SecondarySeed uint64 = 0x3201

// FileDelimiter - Default delimiter between key and value in persisted files
const FileDelimiter string = ","

// LevelDBHeaderKey - Reserved LevelDB key holding the persisted header, entries are stored under prefixed keys
const LevelDBHeaderKey string = "\x00header"

// LevelDBEntryPrefix - Prefix of LevelDB keys holding entries
const LevelDBEntryPrefix string = "\x01"
