package dynamo

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// attributes maps each filterable field to its attribute name.
var attributes = map[domain.Field]string{
	domain.FieldID:     attrID,
	domain.FieldQuote:  attrQuote,
	domain.FieldQuoter: attrQuoter,
	domain.FieldSource: attrSource,
	domain.FieldLikes:  attrLikes,
}

// buildScanFilter turns a filter into a FilterExpression. Names and values
// become #placeholders and :placeholders, so user input never reaches the
// expression text. The second result is false for the empty filter.
func buildScanFilter(filter domain.Filter) (expression.Expression, bool, error) {
	if filter.Empty() {
		return expression.Expression{}, false, nil
	}

	var cond expression.ConditionBuilder
	for i, c := range filter.Conditions {
		attr, ok := attributes[c.Field]
		if !ok {
			return expression.Expression{}, false, domain.NewValidationError(c.Field.String(), "is not a filterable field")
		}

		eq := expression.Name(attr).Equal(expression.Value(c.Value))
		if i == 0 {
			cond = eq
			continue
		}
		cond = cond.And(eq)
	}

	expr, err := expression.NewBuilder().WithFilter(cond).Build()
	if err != nil {
		return expression.Expression{}, false, err
	}

	return expr, true, nil
}

// buildPairQuery builds the key condition for the quote/quoter index.
func buildPairQuery(quote, quoter string) (expression.Expression, error) {
	key := expression.Key(attrQuote).Equal(expression.Value(quote)).
		And(expression.Key(attrQuoter).Equal(expression.Value(quoter)))

	return expression.NewBuilder().WithKeyCondition(key).Build()
}
