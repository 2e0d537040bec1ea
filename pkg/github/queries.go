package github

// getIssuesQuery lists the latest comments of a pull request.
const getIssuesQuery = `
query getIssues($owner: String!, $repo: String!, $issue_id: Int!) {
  repository(owner:$owner, name:$repo) {
    id
    pullRequest(number: $issue_id) {
      comments(last: 100) {
        pageInfo {
          startCursor
          hasNextPage
        }
        totalCount
        nodes {
          id
          body
          isMinimized
        }
      }
    }
  }
}
`

// hideCommentMutation minimizes a single comment.
const hideCommentMutation = `
mutation hideComment($id: ID!, $classifier: ReportedContentClassifiers!) {
  minimizeComment(input: {classifier: $classifier, subjectId: $id}) {
    minimizedComment {
      isMinimized
      minimizedReason
    }
  }
}
`
