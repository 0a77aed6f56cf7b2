package renderer

// Shaders are compiled from source at Init so the binary runs from any
// working directory.

// vertexShader is raylib's default GLSL 330 vertex stage. Both passes share it.
const vertexShader = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;

out vec2 fragTexCoord;
out vec4 fragColor;

uniform mat4 mvp;

void main() {
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// pointsFragment shades the sprite texel with the tint and discards
// fragments below the alpha test threshold.
const pointsFragment = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;

uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform float alphaTest;

out vec4 finalColor;

void main() {
    vec4 texel = texture(texture0, fragTexCoord) * colDiffuse * fragColor;
    if (texel.a < alphaTest) {
        discard;
    }
    finalColor = texel;
}
`

// pixelateFragment replaces every pixel with the top-left pixel of its
// pixelSize block. The source is drawn flipped, so texture v runs bottom-up
// while blocks are counted from the top of the screen.
const pixelateFragment = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;

uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec2 resolution;
uniform float pixelSize;

out vec4 finalColor;

void main() {
    vec2 screen = vec2(fragTexCoord.x, 1.0 - fragTexCoord.y) * resolution;
    vec2 block = floor(screen / pixelSize) * pixelSize;
    vec2 center = block + 0.5;
    vec2 uv = vec2(center.x / resolution.x, 1.0 - center.y / resolution.y);
    finalColor = texture(texture0, uv) * colDiffuse * fragColor;
}
`
