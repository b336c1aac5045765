package syntax

import (
	"fmt"

	"uvss/internal/token"
)

// Kind identifies tokens and nodes. Token kinds share their numeric values
// with token.Kind; node kinds start at nodeKindBase.
type Kind uint16

const nodeKindBase Kind = 1000

const (
	KindDocument Kind = nodeKindBase + iota
	KindList
	KindBlock
	KindEmptyStatement
	KindRuleSet
	KindSelectorWithNavigation
	KindSelector
	KindSelectorPart
	KindSelectorSubPart
	KindSelectorWithParens
	KindNavigationExpression
	KindIndexer
	KindPropertyName
	KindPropertyValue
	KindPropertyValueWithBraces
	KindRule
	KindPropertyTrigger
	KindPropertyTriggerCondition
	KindEventTrigger
	KindEventName
	KindArgumentList
	KindSetTriggerAction
	KindPlayStoryboardTriggerAction
	KindPlaySfxTriggerAction
	KindTransition
	KindStoryboard
	KindStoryboardTarget
	KindAnimation
	KindAnimationKeyframe
	KindCultureDirective
	KindUnknownDirective
	kindSentinel
)

var nodeKindNames = [...]string{
	KindDocument - nodeKindBase:                    "Document",
	KindList - nodeKindBase:                        "List",
	KindBlock - nodeKindBase:                       "Block",
	KindEmptyStatement - nodeKindBase:              "EmptyStatement",
	KindRuleSet - nodeKindBase:                     "RuleSet",
	KindSelectorWithNavigation - nodeKindBase:      "SelectorWithNavigation",
	KindSelector - nodeKindBase:                    "Selector",
	KindSelectorPart - nodeKindBase:                "SelectorPart",
	KindSelectorSubPart - nodeKindBase:             "SelectorSubPart",
	KindSelectorWithParens - nodeKindBase:          "SelectorWithParens",
	KindNavigationExpression - nodeKindBase:        "NavigationExpression",
	KindIndexer - nodeKindBase:                     "Indexer",
	KindPropertyName - nodeKindBase:                "PropertyName",
	KindPropertyValue - nodeKindBase:               "PropertyValue",
	KindPropertyValueWithBraces - nodeKindBase:     "PropertyValueWithBraces",
	KindRule - nodeKindBase:                        "Rule",
	KindPropertyTrigger - nodeKindBase:             "PropertyTrigger",
	KindPropertyTriggerCondition - nodeKindBase:    "PropertyTriggerCondition",
	KindEventTrigger - nodeKindBase:                "EventTrigger",
	KindEventName - nodeKindBase:                   "EventName",
	KindArgumentList - nodeKindBase:                "ArgumentList",
	KindSetTriggerAction - nodeKindBase:            "SetTriggerAction",
	KindPlayStoryboardTriggerAction - nodeKindBase: "PlayStoryboardTriggerAction",
	KindPlaySfxTriggerAction - nodeKindBase:        "PlaySfxTriggerAction",
	KindTransition - nodeKindBase:                  "Transition",
	KindStoryboard - nodeKindBase:                  "Storyboard",
	KindStoryboardTarget - nodeKindBase:            "StoryboardTarget",
	KindAnimation - nodeKindBase:                   "Animation",
	KindAnimationKeyframe - nodeKindBase:           "AnimationKeyframe",
	KindCultureDirective - nodeKindBase:            "CultureDirective",
	KindUnknownDirective - nodeKindBase:            "UnknownDirective",
}

// TokenKind converts a lexical kind into a tree kind.
func TokenKind(k token.Kind) Kind { return Kind(k) }

// IsToken reports whether k is a token kind.
func (k Kind) IsToken() bool { return k < nodeKindBase }

// IsNode reports whether k is a node kind.
func (k Kind) IsNode() bool { return k >= nodeKindBase && k < kindSentinel }

// Token returns the lexical kind for token kinds and token.Invalid otherwise.
func (k Kind) Token() token.Kind {
	if !k.IsToken() {
		return token.Invalid
	}
	return token.Kind(k)
}

func (k Kind) String() string {
	if k.IsToken() {
		return k.Token().String()
	}
	if k.IsNode() {
		return nodeKindNames[k-nodeKindBase]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
