package domain

// Invocation is a sample text used for demonstrations and round trip checks.
const Invocation = "To invoke the hive-mind representing chaos.\n" +
	"Invoking the feeling of chaos.\n" +
	"With out order.\n" +
	"The Nezperdian hive-mind of chaos. Zalgo.\n" +
	"He who Waits Behind The Wall.\n" +
	"ZALGO!"
