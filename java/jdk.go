package java

import "github.com/lintkit/starfix/checker"

// jdkSymbols is a curated table of JDK members a resolver would otherwise
// learn from the class path. It covers the packages and static-member owners
// that show up in wildcard imports in practice; project declarations are
// layered on top by Index.HarvestSource.
var jdkSymbols = buildJDKTable()

func buildJDKTable() []checker.Symbol {
	var symbols []checker.Symbol

	types := func(owner string, names ...string) {
		for _, name := range names {
			symbols = append(symbols, checker.Symbol{Name: name, Owner: owner, Kind: checker.KindType})
		}
	}
	fields := func(owner string, names ...string) {
		for _, name := range names {
			symbols = append(symbols, checker.Symbol{Name: name, Owner: owner, Kind: checker.KindField})
		}
	}
	methods := func(owner string, names ...string) {
		for _, name := range names {
			symbols = append(symbols, checker.Symbol{Name: name, Owner: owner, Kind: checker.KindMethod})
		}
	}

	types("java.lang",
		"Object", "String", "StringBuilder", "StringBuffer", "CharSequence",
		"Boolean", "Byte", "Character", "Short", "Integer", "Long", "Float", "Double",
		"Number", "Math", "System", "Thread", "Runnable", "Class", "ClassLoader",
		"Comparable", "Iterable", "Void", "Enum", "Record",
		"Exception", "RuntimeException", "Error", "Throwable",
		"IllegalArgumentException", "IllegalStateException", "NullPointerException",
		"IndexOutOfBoundsException", "UnsupportedOperationException",
		"Override", "Deprecated", "SuppressWarnings", "FunctionalInterface", "SafeVarargs",
	)

	types("java.util",
		"Collection", "List", "ArrayList", "LinkedList",
		"Map", "HashMap", "LinkedHashMap", "TreeMap", "SortedMap", "NavigableMap",
		"Set", "HashSet", "LinkedHashSet", "TreeSet", "SortedSet", "NavigableSet",
		"Queue", "Deque", "ArrayDeque", "PriorityQueue", "Stack", "Vector",
		"Iterator", "ListIterator", "Enumeration", "Comparator",
		"Optional", "OptionalInt", "OptionalLong", "OptionalDouble",
		"Arrays", "Collections", "Objects", "Random", "Scanner", "StringJoiner",
		"UUID", "Date", "Calendar", "Locale", "Properties", "BitSet", "EnumMap", "EnumSet",
		"NoSuchElementException", "ConcurrentModificationException",
	)

	types("java.io",
		"File", "InputStream", "OutputStream", "Reader", "Writer",
		"BufferedReader", "BufferedWriter", "InputStreamReader", "OutputStreamWriter",
		"FileInputStream", "FileOutputStream", "FileReader", "FileWriter",
		"ByteArrayInputStream", "ByteArrayOutputStream", "PrintStream", "PrintWriter",
		"IOException", "FileNotFoundException", "UncheckedIOException",
		"Closeable", "Flushable", "Serializable",
	)

	types("java.util.function",
		"Function", "BiFunction", "Consumer", "BiConsumer", "Supplier",
		"Predicate", "BiPredicate", "UnaryOperator", "BinaryOperator",
	)

	types("java.util.stream",
		"Stream", "IntStream", "LongStream", "DoubleStream", "Collector", "Collectors",
	)

	types("java.util.concurrent",
		"Callable", "Future", "CompletableFuture", "Executor", "ExecutorService",
		"Executors", "TimeUnit", "CountDownLatch", "Semaphore", "ConcurrentHashMap",
		"ConcurrentMap", "CopyOnWriteArrayList", "BlockingQueue", "LinkedBlockingQueue",
	)

	// Static-member owners reachable through static on-demand imports.
	fields("java.lang.Math", "PI", "E")
	methods("java.lang.Math",
		"abs", "max", "min", "pow", "sqrt", "floor", "ceil", "round", "random",
	)
	methods("java.util.Arrays", "asList", "sort", "stream", "copyOf", "fill", "binarySearch")
	fields("java.util.Collections", "EMPTY_LIST", "EMPTY_MAP", "EMPTY_SET")
	methods("java.util.Collections",
		"emptyList", "emptyMap", "emptySet", "singletonList", "singleton", "singletonMap",
		"unmodifiableList", "unmodifiableMap", "unmodifiableSet", "sort", "reverse",
		"shuffle", "max", "min", "nCopies", "frequency",
	)
	methods("java.util.Objects", "requireNonNull", "equals", "hash", "hashCode", "toString", "isNull", "nonNull")
	fields("java.util.concurrent.TimeUnit",
		"NANOSECONDS", "MICROSECONDS", "MILLISECONDS", "SECONDS", "MINUTES", "HOURS", "DAYS",
	)
	methods("java.util.stream.Collectors",
		"toList", "toSet", "toMap", "joining", "groupingBy", "partitioningBy", "counting", "mapping",
	)

	return symbols
}
