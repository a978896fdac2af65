package game

// Decoding is fail-closed: every parse function accepts exactly the fixed
// lowercase string set and rejects anything else with a DecodeError. There
// is no fallback value for any of the enums.

var roleNames = map[string]Role{
	"assassin":      RoleAssassin,
	"merlin":        RoleMerlin,
	"minion":        RoleMinion,
	"mordred":       RoleMordred,
	"morgana":       RoleMorgana,
	"oberon":        RoleOberon,
	"percival":      RolePercival,
	"reverseoberon": RoleReverseOberon,
	"servant":       RoleServant,
}

// ParseRole decodes a role from its lowercase string form.
func ParseRole(s string) (Role, error) {
	r, ok := roleNames[s]
	if !ok {
		return "", &DecodeError{Detail: "unknown role " + quote(s)}
	}
	return r, nil
}

// ParseAlignment decodes an alignment from its lowercase string form.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case string(AlignmentGood):
		return AlignmentGood, nil
	case string(AlignmentEvil):
		return AlignmentEvil, nil
	}
	return "", &DecodeError{Detail: "unknown alignment " + quote(s)}
}

// ParseQuestStatus decodes a quest status from its lowercase string form.
func ParseQuestStatus(s string) (QuestStatus, error) {
	switch s {
	case string(QuestSuccess):
		return QuestSuccess, nil
	case string(QuestFail):
		return QuestFail, nil
	}
	return "", &DecodeError{Detail: "unknown quest status " + quote(s)}
}

// ParseVictoryType decodes a victory type from its lowercase string form.
func ParseVictoryType(s string) (VictoryType, error) {
	switch s {
	case string(VictoryAssassination):
		return VictoryAssassination, nil
	case string(VictoryQuest):
		return VictoryQuest, nil
	}
	return "", &DecodeError{Detail: "unknown victory type " + quote(s)}
}

func quote(s string) string {
	return `"` + s + `"`
}
