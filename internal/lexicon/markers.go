package lexicon

// negativeMarkers are strong negative indicators: ability and knowledge
// deficits, improvement needs, struggle, and performance issues.
var negativeMarkers = []string{
	"weak", "weaker", "weakest", "weakness", "weaknesses",
	"poor", "poorer", "poorest", "poorly",
	"bad", "worse", "worst", "badly",
	"fail", "failing", "failed", "failure", "fails",
	"lack", "lacking", "lacks", "lacked",
	"insufficient", "inadequate", "deficient",
	"unable", "incapable", "incompetent",
	"struggle", "struggling", "struggles", "struggled",
	"difficult", "difficulty", "difficulties",
	"confused", "confusing", "confusion",
	"lost", "unclear", "uncertain",
	"needs improvement", "needs to improve", "must improve",
	"needs work", "needs attention", "requires improvement",
	"needs to learn", "must learn", "should learn",
	"not good", "not great", "not strong",
	"no understanding", "no knowledge", "no grasp",
	"below average", "below expectations", "subpar",
	"disappointed", "disappointing", "frustrating",
	"problem", "problematic",
	"issue", "issues",
	"error", "errors",
	"mistake", "mistakes",
	"wrong", "incorrect", "inaccurate",
}

// positiveMarkers are strong positive indicators.
var positiveMarkers = []string{
	"excellent", "outstanding", "exceptional", "exemplary",
	"great", "greater", "greatest",
	"amazing", "wonderful",
	"strong", "stronger", "strongest",
	"solid", "impressive", "remarkable", "notable", "noteworthy",
	"proficient", "skilled", "competent", "capable",
	"master", "mastery", "expert", "expertise",
	"excel", "excels", "excelled", "excelling",
	"succeed", "succeeds", "succeeded", "succeeding",
	"achieve", "achieves", "achieved", "achievement",
	"progress", "progressing", "progressed",
	"improve", "improves", "improved", "improving",
	"thorough", "comprehensive", "complete", "detailed",
	"deep", "deeper", "deepest", "depth",
	"understand", "understands", "understanding", "understood",
	"innovative", "creative", "original",
	"efficient", "effective", "productive",
	"professional", "polished", "refined",
	"above average", "exceeds expectations", "surpasses",
}

// neutralMarkers signal middling or mixed performance.
var neutralMarkers = []string{
	"okay", "ok", "fine", "acceptable", "satisfactory",
	"average", "typical", "normal", "standard", "moderate",
	"mixed", "varied", "inconsistent",
	"some", "sometimes", "occasionally",
	"generally", "usually", "mostly",
	"progressing", "developing", "learning",
	"attentive", "participates", "engaged",
	"meets expectations", "on track",
}

// mixedStructureMarkers are conjunctions that almost always signal
// balanced feedback naming both strengths and limitations.
var mixedStructureMarkers = []string{
	"but", "however", "though", "although",
	"yet", "while", "without", "except",
}

// extremeNegativeMarkers indicate severe failure. Two or more of these
// override the balanced-structure heuristic and hand the text to the
// statistical model instead.
var extremeNegativeMarkers = []string{
	"terrible", "awful", "horrible", "dreadful",
	"failed", "failing",
	"very poor", "very bad",
	"extremely weak", "completely lacking",
	"no understanding at all", "totally confused",
}

// successMarkers describe a completed achievement.
var successMarkers = []string{
	"solved", "completed", "finished", "achieved", "passed", "answered",
}

// limitationMarkers describe a limitation that is not outright criticism.
var limitationMarkers = []string{
	"didn't", "did not", "couldn't", "could not", "without", "not",
}

// hardNegativeMarkers disqualify the success-with-limitation pattern:
// their presence means the limitation is criticism, not nuance.
var hardNegativeMarkers = []string{
	"fail", "poor", "bad", "weak",
}
