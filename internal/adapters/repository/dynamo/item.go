package dynamo

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Attribute names in the Quotes table.
const (
	attrID     = "id"
	attrQuote  = "quote"
	attrQuoter = "quoter"
	attrSource = "source"
	attrLikes  = "likes"
)

// item is the stored shape of a quote. A nil Source is written as a NULL
// attribute so the key is always present.
type item struct {
	ID     string  `dynamodbav:"id"`
	Quote  string  `dynamodbav:"quote"`
	Quoter string  `dynamodbav:"quoter"`
	Source *string `dynamodbav:"source"`
	Likes  int64   `dynamodbav:"likes"`
}

func toItem(q *domain.Quote) item {
	return item{
		ID:     q.ID,
		Quote:  q.Text,
		Quoter: q.Quoter,
		Source: q.Source,
		Likes:  q.Likes,
	}
}

func (it item) toDomain() *domain.Quote {
	return &domain.Quote{
		ID:     it.ID,
		Text:   it.Quote,
		Quoter: it.Quoter,
		Source: it.Source,
		Likes:  it.Likes,
	}
}

func marshalQuote(q *domain.Quote) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(toItem(q))
	if err != nil {
		return nil, fmt.Errorf("marshaling quote %s: %w", q.ID, err)
	}

	return av, nil
}

func unmarshalQuote(av map[string]types.AttributeValue) (*domain.Quote, error) {
	var it item
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return nil, fmt.Errorf("unmarshaling quote: %w", err)
	}

	return it.toDomain(), nil
}

func unmarshalQuotes(items []map[string]types.AttributeValue) ([]*domain.Quote, error) {
	out := make([]*domain.Quote, 0, len(items))
	for _, av := range items {
		q, err := unmarshalQuote(av)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}

	return out, nil
}

func idKey(id string) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(map[string]string{attrID: id})
}
