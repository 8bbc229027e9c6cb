package probemap

// Two fixed odd primes parameterize the string hash. Both must exceed the
// ASCII alphabet size (128) and differ from each other so the two hash
// values are independent.
const (
	hashPrimeA = 2423
	hashPrimeB = 2287
)

// hashString treats s as a base-a number with byte values as digits and
// reduces it modulo m: sum of s[i]*a^(len-1-i) mod m, evaluated in Horner
// form with a reduction after every step so arbitrarily long keys never
// overflow.
func hashString(s string, a, m int) int {
	h := uint64(0)
	ua, um := uint64(a), uint64(m)
	for i := 0; i < len(s); i++ {
		h = (h*ua + uint64(s[i])) % um
	}
	return int(h)
}

// probeSeq is the double-hashing probe sequence for one key over m buckets.
// The stride is derived from the secondary hash and lies in [1, m-1], so for
// prime m the sequence visits every bucket before repeating. The naive
// h_b+1 stride can equal m and stall on a single slot.
type probeSeq struct {
	idx    int
	stride int
	m      int
}

func newProbeSeq(key string, m int) probeSeq {
	return probeSeq{
		idx:    hashString(key, hashPrimeA, m),
		stride: 1 + hashString(key, hashPrimeB, m)%(m-1),
		m:      m,
	}
}

// next advances to the following slot in the sequence.
func (p *probeSeq) next() {
	p.idx = (p.idx + p.stride) % p.m
}
