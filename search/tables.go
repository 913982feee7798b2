package search

import "regexp"

// Static lookup tables for lexical scoring. Korean automotive manuals mix
// Korean and English terminology, so every cluster carries both. The tables
// are immutable and loaded once at process start.

// coreKeywords maps an automotive topic cluster to its synonyms.
// Used by TitleScore for direct topic matches between query and title.
var coreKeywords = map[string][]string{
	"엔진":  {"엔진", "engine", "모터"},
	"오일":  {"오일", "oil", "윤활유", "윤활"},
	"타이어": {"타이어", "tire", "바퀴", "wheel"},
	"브레이크": {"브레이크", "brake", "제동"},
	"배터리": {"배터리", "battery", "전지"},
	"필터":  {"필터", "filter", "여과기"},
	"벨트":  {"벨트", "belt", "타이밍"},
	"퓨즈":  {"퓨즈", "fuse", "휴즈"},
	"전구":  {"전구", "lamp", "light", "전등"},
	"냉각수": {"냉각수", "냉각액", "쿨런트", "coolant"},
	"교체":  {"교체", "교환", "갈기", "바꾸기", "replace", "change"},
	"점검":  {"점검", "확인", "체크", "검사", "check", "inspect"},
	"정비":  {"정비", "수리", "관리", "maintenance", "service"},
	"보충":  {"보충", "추가", "충전", "refill", "add"},
	"방법":  {"방법", "절차", "과정", "순서", "단계", "매뉴얼", "procedure", "how"},
	"고장":  {"고장", "문제", "오류", "이상", "trouble", "problem", "fault"},
	"시동":  {"시동", "시작", "start", "ignition"},
}

// topicActions maps a topic appearing in a title to the actions a query
// about that topic typically asks for. Used by TitleScore's
// topic-action combination bonus.
var topicActions = map[string][]string{
	"엔진":  {"교체", "교환", "점검", "확인", "정비", "수리", "오일", "윤활"},
	"오일":  {"교체", "교환", "점검", "확인", "보충", "게이지", "레벨", "주입"},
	"타이어": {"교체", "교환", "점검", "확인", "공기압", "마모", "회전", "정렬"},
	"브레이크": {"점검", "확인", "교체", "패드", "디스크", "액", "오일", "정비"},
	"배터리": {"교체", "충전", "점검", "확인", "방전", "단자", "청소"},
	"필터":  {"교체", "교환", "청소", "점검", "에어", "오일", "연료"},
	"벨트":  {"교체", "교환", "점검", "확인", "장력", "타이밍"},
	"퓨즈":  {"교체", "교환", "점검", "확인", "단선", "차단"},
	"전구":  {"교체", "교환", "점검", "확인", "램프", "라이트"},
	"냉각수": {"교체", "보충", "점검", "확인", "온도", "레벨"},
	"시동":  {"방법", "걸기", "끄기", "문제", "고장", "키", "버튼"},
}

// synonymClusters is the synonym dictionary used by KeywordScore.
// A keyword and a query token that resolve to the same cluster count
// as a synonym match.
var synonymClusters = map[string][]string{
	"엔진":   {"엔진", "모터", "engine"},
	"오일":   {"오일", "윤활유", "윤활", "oil", "lubricant"},
	"엔진오일": {"엔진오일", "엔진 오일", "모터오일", "윤활유"},
	"교체":   {"교환", "갈기", "변경", "바꾸기", "수리", "replace", "change"},
	"점검":   {"확인", "체크", "검사", "측정", "check", "inspect"},
	"정비":   {"수리", "관리", "maintenance", "service"},
	"보충":   {"추가", "충전", "refill", "add"},
	"방법":   {"절차", "과정", "순서", "단계", "매뉴얼", "안내", "procedure"},
	"단계":   {"절차", "과정", "순서", "step"},
	"타이어":  {"타이어", "바퀴", "tire", "wheel"},
	"브레이크": {"브레이크", "제동", "brake"},
	"배터리":  {"배터리", "전지", "battery"},
	"필터":   {"필터", "여과기", "filter"},
	"벨트":   {"벨트", "타이밍벨트", "belt"},
	"호스":   {"호스", "파이프", "hose", "pipe"},
	"냉각수":  {"냉각액", "쿨런트", "coolant", "antifreeze"},
	"브레이크액": {"브레이크오일", "브레이크액", "brake fluid"},
	"워셔액":  {"세정액", "washer fluid"},
	"고장":   {"문제", "오류", "이상", "trouble", "problem"},
	"경고":   {"주의", "warning", "caution"},
	"안전":   {"safety", "보안"},
	"시동":   {"시작", "start", "ignition"},
	"정지":   {"중지", "stop", "turn off"},
	"계기판":  {"대시보드", "dashboard", "cluster"},
	"게이지":  {"측정기", "gauge", "meter"},
	"표시등":  {"램프", "light", "indicator"},
	"엔진룸":  {"보닛", "hood", "engine bay"},
	"트렁크":  {"적재함", "trunk", "cargo"},
	"실내":   {"cabin", "interior"},
	"에어컨":  {"냉방", "air conditioning", "A/C"},
	"히터":   {"난방", "heating"},
	"와이퍼":  {"와이셔", "wiper"},
	"연료":   {"기름", "가솔린", "fuel", "gasoline"},
	"주유":   {"급유", "fueling", "refueling"},
}

// bonusTopic pairs title topics with the query actions that make a
// section about those topics especially relevant.
type bonusTopic struct {
	topics  []string
	actions []string
}

// bonusTopics is the smaller topic-action table used by BonusScore.
// Contribution per entry is capped at 0.3.
var bonusTopics = []bonusTopic{
	{topics: []string{"엔진", "오일"}, actions: []string{"교체", "교환", "방법", "절차", "점검"}},
	{topics: []string{"타이어"}, actions: []string{"교체", "교환", "점검", "공기압", "마모"}},
	{topics: []string{"브레이크"}, actions: []string{"점검", "확인", "교체", "패드", "액"}},
	{topics: []string{"배터리"}, actions: []string{"교체", "충전", "점검", "확인", "방전"}},
	{topics: []string{"시동"}, actions: []string{"방법", "걸기", "끄기", "문제", "고장"}},
	{topics: []string{"정비", "수리"}, actions: []string{"방법", "절차", "점검", "교체"}},
	{topics: []string{"필터"}, actions: []string{"교체", "교환", "청소", "점검"}},
	{topics: []string{"냉각수", "쿨런트"}, actions: []string{"교체", "보충", "점검", "확인"}},
	{topics: []string{"오일"}, actions: []string{"교체", "교환", "보충", "점검", "게이지"}},
}

// proceduralCues are query words implying the user wants step-by-step
// instructions.
var proceduralCues = []string{"방법", "절차", "단계", "과정"}

// importantWords are domain words whose presence in content indicates
// actionable maintenance instructions.
var importantWords = []string{
	"교체", "교환", "점검", "확인", "보충", "게이지", "주입구",
	"방법", "절차", "단계", "과정", "주의", "경고", "안전",
}

// stepPattern matches enumerated steps like "1. " in section content.
var stepPattern = regexp.MustCompile(`\d+\.\s`)
