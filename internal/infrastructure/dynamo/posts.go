package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/go-api-posts/internal/config"
	"github.com/go-api-posts/internal/domain"
	"github.com/go-api-posts/internal/pkg/id"
)

const (
	attrPostID  = "post_id"
	attrTitle   = "title"
	attrContent = "content"

	conditionalCheckFailed = "ConditionalCheckFailed"
)

type postItem struct {
	PostID  int64  `dynamodbav:"post_id"`
	Title   string `dynamodbav:"title"`
	Content string `dynamodbav:"content"`
}

// titleItem reserves a title for one post. The title table is keyed by title,
// so a conditional put on it is the uniqueness check.
type titleItem struct {
	Title  string `dynamodbav:"title"`
	PostID int64  `dynamodbav:"post_id"`
}

// PostRepo provides typed DynamoDB operations for the posts and post_titles tables.
type PostRepo struct {
	client      API
	postsTable  string
	titlesTable string
	ids         *id.Generator
}

func NewPostRepo(client API, tables config.DynamoTables, ids *id.Generator) *PostRepo {
	if ids == nil {
		ids = id.NewGenerator()
	}
	return &PostRepo{client: client, postsTable: tables.Posts, titlesTable: tables.PostTitles, ids: ids}
}

// GetAll scans the whole posts table and returns the posts ordered by id.
func (r *PostRepo) GetAll(ctx context.Context) ([]*domain.Post, error) {
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.postsTable),
	})
	var items []postItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan posts: %w", err)
		}
		var batch []postItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("unmarshal posts: %w", err)
		}
		items = append(items, batch...)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].PostID < items[j].PostID })

	posts := make([]*domain.Post, 0, len(items))
	for _, it := range items {
		post, err := it.toDomain()
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (r *PostRepo) GetByID(ctx context.Context, postID int64) (*domain.Post, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.postsTable),
		Key:            numKey(attrPostID, postID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}
	if out.Item == nil {
		return nil, domain.ErrNotFound
	}
	var it postItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("unmarshal post %d: %w", postID, err)
	}
	return it.toDomain()
}

// GetDuplicate follows the title reservation to the post holding it.
// A reservation whose post is gone counts as no duplicate.
func (r *PostRepo) GetDuplicate(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.titlesTable),
		Key:            strKey(attrTitle, p.Title()),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get title reservation: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	var lock titleItem
	if err := attributevalue.UnmarshalMap(out.Item, &lock); err != nil {
		return nil, fmt.Errorf("unmarshal title reservation: %w", err)
	}
	dup, err := r.GetByID(ctx, lock.PostID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return dup, err
}

// Create reserves the title and writes the post in one transaction.
func (r *PostRepo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	postID := r.ids.Next()
	postAV, err := attributevalue.MarshalMap(postItem{PostID: postID, Title: p.Title(), Content: p.Content()})
	if err != nil {
		return nil, fmt.Errorf("marshal post: %w", err)
	}
	lockAV, err := attributevalue.MarshalMap(titleItem{Title: p.Title(), PostID: postID})
	if err != nil {
		return nil, fmt.Errorf("marshal title reservation: %w", err)
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.titlesTable),
				Item:                     lockAV,
				ConditionExpression:      aws.String("attribute_not_exists(#t)"),
				ExpressionAttributeNames: map[string]string{"#t": attrTitle},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.postsTable),
				Item:                     postAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": attrPostID},
			}},
		},
	})
	if err != nil {
		if cancelledAt(err, 0) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p.WithID(postID), nil
}

// Update rewrites title and content. When the title changes, the old
// reservation is released and the new one taken in the same transaction.
func (r *PostRepo) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	current, err := r.GetByID(ctx, p.ID())
	if err != nil {
		return nil, err
	}

	ue, err := buildUpdateExpr(map[string]interface{}{
		attrTitle:   p.Title(),
		attrContent: p.Content(),
	})
	if err != nil {
		return nil, err
	}
	// The stored title must still be the one read above, otherwise the
	// reservation released below could belong to a concurrent rename.
	ue.Names["#cur"] = attrTitle
	ue.Values[":cur"] = &types.AttributeValueMemberS{Value: current.Title()}

	items := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName:                 aws.String(r.postsTable),
			Key:                       numKey(attrPostID, p.ID()),
			UpdateExpression:          aws.String(ue.Expr),
			ConditionExpression:       aws.String("#cur = :cur"),
			ExpressionAttributeNames:  ue.Names,
			ExpressionAttributeValues: ue.Values,
		}},
	}
	if current.Title() != p.Title() {
		lockAV, err := attributevalue.MarshalMap(titleItem{Title: p.Title(), PostID: p.ID()})
		if err != nil {
			return nil, fmt.Errorf("marshal title reservation: %w", err)
		}
		pid := numKey(":pid", p.ID())
		items = append(items,
			types.TransactWriteItem{Delete: &types.Delete{
				TableName:                 aws.String(r.titlesTable),
				Key:                       strKey(attrTitle, current.Title()),
				ConditionExpression:       aws.String("attribute_not_exists(#pid) OR #pid = :pid"),
				ExpressionAttributeNames:  map[string]string{"#pid": attrPostID},
				ExpressionAttributeValues: pid,
			}},
			types.TransactWriteItem{Put: &types.Put{
				TableName:                aws.String(r.titlesTable),
				Item:                     lockAV,
				ConditionExpression:      aws.String("attribute_not_exists(#t)"),
				ExpressionAttributeNames: map[string]string{"#t": attrTitle},
			}},
		)
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	switch {
	case err == nil:
		return domain.NewPost(p.ID(), p.Title(), p.Content())
	case cancelledAt(err, 2):
		return nil, domain.ErrConflict
	case cancelledAt(err, 0):
		if _, gerr := r.GetByID(ctx, p.ID()); errors.Is(gerr, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrConflict
	default:
		return nil, fmt.Errorf("update post %d: %w", p.ID(), err)
	}
}

func (it postItem) toDomain() (*domain.Post, error) {
	p, err := domain.NewPost(it.PostID, it.Title, it.Content)
	if err != nil {
		return nil, fmt.Errorf("decode post %d: %w", it.PostID, err)
	}
	return p, nil
}

// cancelledAt reports whether a transaction was cancelled because the
// condition of the item at index failed.
func cancelledAt(err error, index int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) || index >= len(tce.CancellationReasons) {
		return false
	}
	return aws.ToString(tce.CancellationReasons[index].Code) == conditionalCheckFailed
}
