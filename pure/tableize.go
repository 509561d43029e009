package pure

func TableizeF1[O any](
	pureFn func(float64) O,
	maxTableSize uint32,
) func(float64) O {
	tableized := tableize(
		func(args ...float64) O {
			return pureFn(args[0])
		},
		maxTableSize,
	)
	return func(a float64) O {
		return tableized(a)
	}
}

func TableizeF2[O any](
	pureFn func(float64, float64) O,
	maxTableSize uint32,
) func(float64, float64) O {
	tableized := tableize(
		func(args ...float64) O {
			return pureFn(args[0], args[1])
		},
		maxTableSize,
	)
	return func(a, b float64) O {
		return tableized(a, b)
	}
}

func TableizeF3[O any](
	pureFn func(float64, float64, float64) O,
	maxTableSize uint32,
) func(float64, float64, float64) O {
	tableized := tableize(
		func(args ...float64) O {
			return pureFn(args[0], args[1], args[2])
		},
		maxTableSize,
	)
	return func(a, b, c float64) O {
		return tableized(a, b, c)
	}
}

// tableize calls pureFn on a miss only. Concurrent misses on the same key may
// both call pureFn; for a pure function that is harmless.
func tableize[O any](
	pureFn func(...float64) O,
	maxTableSize uint32,
) func(...float64) O {
	memo := NewTable[O](maxTableSize)
	return func(args ...float64) O {
		k := KeyOf(args...)
		v, ok := memo.Load(k)
		if !ok {
			v = pureFn(args...)
			memo.Store(k, v)
		}
		return v
	}
}
